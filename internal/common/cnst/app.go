package cnst

const (
	AppName     = "farmchainx"
	CommandName = "farmchainx-apiserver"
)

// ApiServerYaml is the default config file looked up by the API server
const ApiServerYaml = "apiserver.yaml"
