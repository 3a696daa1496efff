package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"markethub/internal/application"
)

// CreateProductInput declares the create_product argument schema.
type CreateProductInput struct {
	Name        string         `json:"name" jsonschema:"product name"`
	Description string         `json:"description" jsonschema:"product description"`
	PictureURL  string         `json:"pictureUrl,omitempty" jsonschema:"optional product image URL"`
	UnitPrice   float64        `json:"unitPrice" jsonschema:"unit price of the product"`
	Quantity    float64        `json:"quantity" jsonschema:"available quantity"`
	MeasureType string         `json:"measureType" jsonschema:"unit of measurement (e.g. kg, liters, units)"`
	Attributes  map[string]any `json:"attributes" jsonschema:"additional product attributes as key-value pairs"`
}

// GetProductInput addresses a single product by identifier.
type GetProductInput struct {
	ID string `json:"id" jsonschema:"product identifier"`
}

// UpdateProductInput declares the update_product argument schema; all
// fields but id are optional.
type UpdateProductInput struct {
	ID          string         `json:"id" jsonschema:"product identifier"`
	Name        *string        `json:"name,omitempty" jsonschema:"updated product name"`
	Description *string        `json:"description,omitempty" jsonschema:"updated description"`
	PictureURL  *string        `json:"pictureUrl,omitempty" jsonschema:"updated picture URL"`
	UnitPrice   *float64       `json:"unitPrice,omitempty" jsonschema:"updated unit price"`
	Quantity    *float64       `json:"quantity,omitempty" jsonschema:"updated quantity"`
	MeasureType *string        `json:"measureType,omitempty" jsonschema:"updated measure type"`
	Attributes  map[string]any `json:"attributes,omitempty" jsonschema:"updated attributes"`
}

// ListProductsInput is empty; get_all_products takes no arguments.
type ListProductsInput struct{}

type ListProductsResult struct {
	Products []ProductPayload `json:"products" jsonschema:"every stored product"`
}

type DeleteProductResult struct {
	ID      string `json:"id" jsonschema:"deleted product identifier"`
	Deleted bool   `json:"deleted" jsonschema:"whether the product was removed"`
}

func CreateProductTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_product",
		Description: "Create a new product with name, description, price, quantity, measure type, and attributes",
	}
}

func GetAllProductsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_all_products",
		Description: "Retrieve all products from the database",
	}
}

func GetProductByIDTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_product_by_id",
		Description: "Get a specific product by its ID",
	}
}

func UpdateProductTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_product",
		Description: "Update an existing product by ID",
	}
}

func DeleteProductTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_product",
		Description: "Delete a product by its ID",
	}
}

func CreateProductHandler(svc *application.ProductService) mcp.ToolHandlerFor[CreateProductInput, ProductPayload] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in CreateProductInput) (*mcp.CallToolResult, ProductPayload, error) {
		p, err := svc.CreateProduct(ctx, application.CreateProductInput{
			Name:        in.Name,
			Description: in.Description,
			PictureURL:  in.PictureURL,
			UnitPrice:   in.UnitPrice,
			Quantity:    in.Quantity,
			MeasureType: in.MeasureType,
			Attributes:  in.Attributes,
		})
		if err != nil {
			return nil, ProductPayload{}, err
		}
		return nil, productPayload(p), nil
	}
}

func GetAllProductsHandler(svc *application.ProductService) mcp.ToolHandlerFor[ListProductsInput, ListProductsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListProductsInput) (*mcp.CallToolResult, ListProductsResult, error) {
		products, err := svc.GetAllProducts(ctx)
		if err != nil {
			return nil, ListProductsResult{}, err
		}
		out := ListProductsResult{Products: make([]ProductPayload, 0, len(products))}
		for i := range products {
			out.Products = append(out.Products, productPayload(&products[i]))
		}
		return nil, out, nil
	}
}

func GetProductByIDHandler(svc *application.ProductService) mcp.ToolHandlerFor[GetProductInput, ProductPayload] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in GetProductInput) (*mcp.CallToolResult, ProductPayload, error) {
		p, err := svc.GetProductByID(ctx, in.ID)
		if err != nil {
			return nil, ProductPayload{}, err
		}
		return nil, productPayload(p), nil
	}
}

func UpdateProductHandler(svc *application.ProductService) mcp.ToolHandlerFor[UpdateProductInput, ProductPayload] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UpdateProductInput) (*mcp.CallToolResult, ProductPayload, error) {
		p, err := svc.UpdateProduct(ctx, in.ID, application.UpdateProductInput{
			Name:        in.Name,
			Description: in.Description,
			PictureURL:  in.PictureURL,
			UnitPrice:   in.UnitPrice,
			Quantity:    in.Quantity,
			MeasureType: in.MeasureType,
			Attributes:  in.Attributes,
		})
		if err != nil {
			return nil, ProductPayload{}, err
		}
		return nil, productPayload(p), nil
	}
}

func DeleteProductHandler(svc *application.ProductService) mcp.ToolHandlerFor[GetProductInput, DeleteProductResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in GetProductInput) (*mcp.CallToolResult, DeleteProductResult, error) {
		if err := svc.DeleteProduct(ctx, in.ID); err != nil {
			return nil, DeleteProductResult{}, err
		}
		return nil, DeleteProductResult{ID: in.ID, Deleted: true}, nil
	}
}
