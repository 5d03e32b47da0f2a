package langchaingo

import "github.com/tmc/langchaingo/tools"

// NewTools returns the ten agent tools bound to kit. opts apply to every tool.
func NewTools(kit Kit, opts ...Option) []tools.Tool {
	return []tools.Tool{
		NewBalanceTool(kit, opts...),
		NewTransferTool(kit, opts...),
		NewDeployTokenTool(kit, opts...),
		NewDeployCollectionTool(kit, opts...),
		NewMintNFTTool(kit, opts...),
		NewTradeTool(kit, opts...),
		NewRequestFundsTool(kit, opts...),
		NewRegisterDomainTool(kit, opts...),
		NewWalletAddressTool(kit, opts...),
		NewLaunchTokenTool(kit, opts...),
	}
}

// FindTool returns the tool with the given name.
func FindTool(agentTools []tools.Tool, name string) (tools.Tool, bool) {
	for _, tool := range agentTools {
		if tool.Name() == name {
			return tool, true
		}
	}
	return nil, false
}
