// Package swagger registers the OpenAPI document served at /swagger.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/calculate-price": {
            "post": {
                "description": "Applies the optional coupon and the VAT of the buyer's country to the product price",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["checkout"],
                "summary": "Calculate price",
                "parameters": [
                    {
                        "description": "Calculate Price Payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.CalculatePriceRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/purchase": {
            "post": {
                "description": "Calculates the final price and pays it with the requested payment processor",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["checkout"],
                "summary": "Purchase product",
                "parameters": [
                    {
                        "description": "Purchase Payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.PurchaseRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/products": {
            "get": {
                "description": "Retrieves a paginated list of products",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get products",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Number of items per page (default 20)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/taxes": {
            "get": {
                "description": "Retrieves the VAT rate of every supported country",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get taxes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/payment-processors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["checkout"],
                "summary": "Get payment processors",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"type": "string"},
                "status": {"type": "string"},
                "status_code": {"type": "integer"}
            }
        },
        "service.CalculatePriceRequest": {
            "type": "object",
            "properties": {
                "couponCode": {"type": "string", "example": "D15"},
                "product": {"type": "integer", "example": 1},
                "taxNumber": {"type": "string", "example": "DE123456789"}
            }
        },
        "service.PurchaseRequest": {
            "type": "object",
            "properties": {
                "couponCode": {"type": "string", "example": "D15"},
                "paymentProcessor": {"type": "string", "example": "paypal"},
                "product": {"type": "integer", "example": 1},
                "taxNumber": {"type": "string", "example": "IT12345678900"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Checkout API",
	Description:      "Price calculation and purchase API with country VAT, coupons and pluggable payment processors.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
