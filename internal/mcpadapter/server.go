package mcpadapter

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/generation"
)

func NewServer(service *generation.Service) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "voice-agent",
			Version: "1.0.0",
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_personality",
		Description: "Resolve the brand personality and behavior profile for an explicit key, stored mode, funnel or page path",
	}, NewResolveHandler(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sanitize_input",
		Description: "Strip markup and redact banned marketing phrases from user input",
	}, NewSanitizeHandler(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_envelope",
		Description: "Build the prompt envelope for a task without calling the model",
	}, NewEnvelopeHandler(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_copy",
		Description: "Validate copy against the personality's forbidden words and the platform banned phrases",
	}, NewValidateHandler(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_copy",
		Description: "Generate copy in the resolved personality and return it with its validation verdict",
	}, NewGenerateHandler(service))

	return server
}
