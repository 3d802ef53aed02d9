package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
)

const openAPIPath = "/api/v1/openapi.json"

// RegisterOpenAPI must run after every other web service is added.
func RegisterOpenAPI(container *restful.Container) {
	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       openAPIPath,
		PostBuildSwaggerObjectHandler: describeService,
	}
	container.Add(restfulspec.NewOpenAPIService(config))
}

func describeService(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Voice Agent API",
			Description: "Brand personality resolution, prompt guardrails and validated copy generation",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "personality", Description: "Personality and behavior resolution"}},
		{TagProps: spec.TagProps{Name: "guardrails", Description: "Sanitization, envelopes and validation"}},
		{TagProps: spec.TagProps{Name: "generate", Description: "Copy generation"}},
		{TagProps: spec.TagProps{Name: "brand-mode", Description: "Stored brand mode per funnel"}},
	}
}
