package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/personalities").
			To(handler.Personalities).
			Doc("List the personality catalogue").
			Metadata(restfulspec.KeyOpenAPITags, []string{"personality"}).
			Writes(PersonalitiesResponse{}).
			Returns(200, "OK", PersonalitiesResponse{}))

	ws.
		Route(ws.POST("/personality/resolve").
			To(handler.ResolvePersonality).
			Doc("Resolve the personality for a context").
			Metadata(restfulspec.KeyOpenAPITags, []string{"personality"}).
			Reads(ResolveRequest{}).
			Writes(ResolveResponse{}).
			Returns(200, "OK", ResolveResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/behavior").
			To(handler.Behavior).
			Doc("Resolve the behavior profile for a personality and state").
			Metadata(restfulspec.KeyOpenAPITags, []string{"personality"}).
			Reads(BehaviorRequest{}).
			Writes(models.BehaviorProfile{}).
			Returns(200, "OK", models.BehaviorProfile{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/sanitize").
			To(handler.Sanitize).
			Doc("Redact banned phrases from user input").
			Metadata(restfulspec.KeyOpenAPITags, []string{"guardrails"}).
			Reads(SanitizeRequest{}).
			Writes(SanitizeResponse{}).
			Returns(200, "OK", SanitizeResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/envelope").
			To(handler.Envelope).
			Doc("Build the prompt envelope without calling the model").
			Metadata(restfulspec.KeyOpenAPITags, []string{"guardrails"}).
			Reads(EnvelopeRequest{}).
			Writes(EnvelopeResponse{}).
			Returns(200, "OK", EnvelopeResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/validate").
			To(handler.Validate).
			Doc("Validate copy against personality and platform rules").
			Metadata(restfulspec.KeyOpenAPITags, []string{"guardrails"}).
			Reads(ValidateRequest{}).
			Writes(models.ValidationResult{}).
			Returns(200, "OK", models.ValidationResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/generate").
			To(handler.Generate).
			Doc("Generate validated copy").
			Metadata(restfulspec.KeyOpenAPITags, []string{"generate"}).
			Reads(models.GenerateRequest{}).
			Writes(models.GenerateResult{}).
			Returns(200, "OK", models.GenerateResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(502, "Generation Failed", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/generate/sections").
			To(handler.GenerateSections).
			Doc("Generate several page sections concurrently").
			Metadata(restfulspec.KeyOpenAPITags, []string{"generate"}).
			Reads(models.SectionsRequest{}).
			Writes([]models.SectionResult{}).
			Returns(200, "OK", []models.SectionResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/generate/stream").
			To(handler.GenerateStream).
			Consumes(restful.MIME_JSON).
			Produces("text/event-stream", restful.MIME_JSON).
			Doc("Stream generated copy, then the validation result").
			Metadata(restfulspec.KeyOpenAPITags, []string{"generate"}).
			Reads(models.GenerateRequest{}).
			Returns(200, "OK", nil).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(501, "Streaming Not Supported", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/funnels/{funnel_id}/brand-mode").
			To(handler.GetBrandMode).
			Doc("Get the stored brand mode of a funnel").
			Metadata(restfulspec.KeyOpenAPITags, []string{"brand-mode"}).
			Param(ws.PathParameter("funnel_id", "Funnel identifier").DataType("string")).
			Writes(BrandModeResponse{}).
			Returns(200, "OK", BrandModeResponse{}).
			Returns(503, "Mode Store Disabled", middleware.ErrorResponse{}))

	ws.
		Route(ws.PUT("/funnels/{funnel_id}/brand-mode").
			To(handler.SetBrandMode).
			Doc("Store the brand mode of a funnel").
			Metadata(restfulspec.KeyOpenAPITags, []string{"brand-mode"}).
			Param(ws.PathParameter("funnel_id", "Funnel identifier").DataType("string")).
			Reads(BrandModeRequest{}).
			Writes(BrandModeResponse{}).
			Returns(200, "OK", BrandModeResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(503, "Mode Store Disabled", middleware.ErrorResponse{}))

	container.Add(ws)
}
