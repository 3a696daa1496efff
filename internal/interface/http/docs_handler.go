package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DocsHandler serves the OpenAPI document assembled from the route and DTO
// declarations, plus a small viewer page.
type DocsHandler struct {
	spec gin.H
}

func NewDocsHandler(appName, version string) *DocsHandler {
	return &DocsHandler{spec: buildOpenAPISpec(appName, version)}
}

func (h *DocsHandler) Spec(c *gin.Context) {
	c.JSON(http.StatusOK, h.spec)
}

const docsPage = `<!DOCTYPE html>
<html>
<head><title>API Docs</title></head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css"/>
<script>window.onload = () => SwaggerUIBundle({url: "/docs/openapi.json", dom_id: "#swagger-ui"});</script>
</body>
</html>`

func (h *DocsHandler) Page(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsPage))
}

func buildOpenAPISpec(appName, version string) gin.H {
	userSchema := gin.H{
		"type": "object",
		"properties": gin.H{
			"id":         gin.H{"type": "string"},
			"email":      gin.H{"type": "string", "format": "email"},
			"name":       gin.H{"type": "string"},
			"pictureUrl": gin.H{"type": "string"},
			"createdAt":  gin.H{"type": "string", "format": "date-time"},
			"updatedAt":  gin.H{"type": "string", "format": "date-time"},
		},
	}
	productSchema := gin.H{
		"type": "object",
		"properties": gin.H{
			"id":          gin.H{"type": "string"},
			"name":        gin.H{"type": "string"},
			"description": gin.H{"type": "string"},
			"pictureUrl":  gin.H{"type": "string"},
			"unitPrice":   gin.H{"type": "number", "minimum": 0},
			"quantity":    gin.H{"type": "number", "minimum": 0},
			"measureType": gin.H{"type": "string"},
			"attributes":  gin.H{"type": "object"},
			"createdAt":   gin.H{"type": "string", "format": "date-time"},
			"updatedAt":   gin.H{"type": "string", "format": "date-time"},
		},
	}
	createUser := gin.H{
		"type":     "object",
		"required": []string{"email", "password", "name"},
		"properties": gin.H{
			"email":      gin.H{"type": "string", "format": "email"},
			"password":   gin.H{"type": "string", "minLength": 6},
			"name":       gin.H{"type": "string"},
			"pictureUrl": gin.H{"type": "string"},
		},
	}
	updateUser := gin.H{
		"type": "object",
		"properties": gin.H{
			"email":      gin.H{"type": "string", "format": "email"},
			"password":   gin.H{"type": "string", "minLength": 6},
			"name":       gin.H{"type": "string"},
			"pictureUrl": gin.H{"type": "string"},
		},
	}
	createProduct := gin.H{
		"type":     "object",
		"required": []string{"name", "description", "unitPrice", "quantity", "measureType", "attributes"},
		"properties": gin.H{
			"name":        gin.H{"type": "string"},
			"description": gin.H{"type": "string"},
			"pictureUrl":  gin.H{"type": "string"},
			"unitPrice":   gin.H{"type": "number", "minimum": 0},
			"quantity":    gin.H{"type": "number", "minimum": 0},
			"measureType": gin.H{"type": "string"},
			"attributes":  gin.H{"type": "object"},
		},
	}
	updateProduct := gin.H{
		"type": "object",
		"properties": gin.H{
			"name":        gin.H{"type": "string"},
			"description": gin.H{"type": "string"},
			"pictureUrl":  gin.H{"type": "string"},
			"unitPrice":   gin.H{"type": "number", "minimum": 0},
			"quantity":    gin.H{"type": "number", "minimum": 0},
			"measureType": gin.H{"type": "string"},
			"attributes":  gin.H{"type": "object"},
		},
	}

	return gin.H{
		"openapi": "3.0.3",
		"info":    gin.H{"title": appName + " API", "version": version},
		"paths": gin.H{
			"/health": gin.H{
				"get": gin.H{
					"summary":   "Health check",
					"responses": gin.H{"200": gin.H{"description": "Server is running"}},
				},
			},
			"/api/users":         collectionPaths("User", "Users", "CreateUser"),
			"/api/users/{id}":    itemPaths("User", "Users", "UpdateUser"),
			"/api/products":      collectionPaths("Product", "Products", "CreateProduct"),
			"/api/products/{id}": itemPaths("Product", "Products", "UpdateProduct"),
		},
		"components": gin.H{
			"schemas": gin.H{
				"User":          userSchema,
				"Product":       productSchema,
				"CreateUser":    createUser,
				"UpdateUser":    updateUser,
				"CreateProduct": createProduct,
				"UpdateProduct": updateProduct,
			},
		},
	}
}

func schemaRef(name string) gin.H {
	return gin.H{"$ref": "#/components/schemas/" + name}
}

func jsonBody(schema string) gin.H {
	return gin.H{
		"required": true,
		"content":  gin.H{"application/json": gin.H{"schema": schemaRef(schema)}},
	}
}

func jsonResponse(description string, schema gin.H) gin.H {
	return gin.H{
		"description": description,
		"content":     gin.H{"application/json": gin.H{"schema": schema}},
	}
}

func collectionPaths(entity, tag, createSchema string) gin.H {
	return gin.H{
		"post": gin.H{
			"summary":     "Create a new " + entity,
			"tags":        []string{tag},
			"requestBody": jsonBody(createSchema),
			"responses": gin.H{
				"201": jsonResponse(entity+" created", schemaRef(entity)),
				"400": gin.H{"description": "Validation error"},
				"409": gin.H{"description": "Conflict"},
				"500": gin.H{"description": "Server error"},
			},
		},
		"get": gin.H{
			"summary": "List all " + tag,
			"tags":    []string{tag},
			"responses": gin.H{
				"200": jsonResponse("List of "+tag, gin.H{"type": "array", "items": schemaRef(entity)}),
				"500": gin.H{"description": "Server error"},
			},
		},
	}
}

func itemPaths(entity, tag, updateSchema string) gin.H {
	idParam := []gin.H{{
		"name":     "id",
		"in":       "path",
		"required": true,
		"schema":   gin.H{"type": "string"},
	}}
	return gin.H{
		"get": gin.H{
			"summary":    "Get " + entity + " by ID",
			"tags":       []string{tag},
			"parameters": idParam,
			"responses": gin.H{
				"200": jsonResponse(entity+" found", schemaRef(entity)),
				"404": gin.H{"description": entity + " not found"},
			},
		},
		"put": gin.H{
			"summary":     "Update " + entity,
			"tags":        []string{tag},
			"parameters":  idParam,
			"requestBody": jsonBody(updateSchema),
			"responses": gin.H{
				"200": jsonResponse(entity+" updated", schemaRef(entity)),
				"400": gin.H{"description": "Validation error"},
				"404": gin.H{"description": entity + " not found"},
				"409": gin.H{"description": "Conflict"},
			},
		},
		"delete": gin.H{
			"summary":    "Delete " + entity,
			"tags":       []string{tag},
			"parameters": idParam,
			"responses": gin.H{
				"204": gin.H{"description": entity + " deleted"},
				"404": gin.H{"description": entity + " not found"},
			},
		},
	}
}
