// Package providers - The closed set of supported backends.
package providers

// AllProviders returns one default-configured instance of every backend kind.
// Useful for enumerating what the current runtime build and platform offer.
func AllProviders() []ExecutionProvider {
	return []ExecutionProvider{
		NewCUDAProvider(CUDAOptions{}),
		NewTensorRTProvider(TensorRTOptions{}),
		NewOneDNNProvider(OneDNNOptions{}),
		NewACLProvider(ACLOptions{}),
		NewOpenVINOProvider(OpenVINOOptions{}),
		NewCoreMLProvider(CoreMLOptions{}),
		NewROCmProvider(ROCmOptions{}),
		NewCANNProvider(CANNOptions{}),
		NewDirectMLProvider(DirectMLOptions{}),
		NewTVMProvider(TVMOptions{}),
		NewNNAPIProvider(NNAPIOptions{}),
		NewQNNProvider(QNNOptions{}),
		NewXNNPACKProvider(XNNPACKOptions{}),
		NewArmNNProvider(ArmNNOptions{}),
		NewMIGraphXProvider(MIGraphXOptions{}),
		NewVitisAIProvider(VitisAIOptions{}),
		NewRKNPUProvider(),
		NewCPUProvider(CPUOptions{}),
	}
}
