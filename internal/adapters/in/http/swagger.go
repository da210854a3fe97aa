package http

import (
	"sensorcoverage/internal/adapters/in/http/api"

	"github.com/swaggo/swag"
)

// swaggerInfo serves the embedded OpenAPI document to Swagger UI.
var swaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Title:            "Sensor Coverage API",
	Description:      "Counts the positions on a row that cannot hold a beacon.",
	InfoInstanceName: swag.Name,
	SwaggerTemplate:  string(api.Document()),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(swaggerInfo.InstanceName(), swaggerInfo)
}
