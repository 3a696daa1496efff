package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"markethub/internal/application"
)

// CreateUserInput declares the create_user argument schema.
type CreateUserInput struct {
	Email      string `json:"email" jsonschema:"user email address"`
	Password   string `json:"password" jsonschema:"user password (minimum 6 characters)"`
	Name       string `json:"name" jsonschema:"user full name"`
	PictureURL string `json:"pictureUrl,omitempty" jsonschema:"optional profile picture URL"`
}

// GetUserInput addresses a single user by identifier.
type GetUserInput struct {
	ID string `json:"id" jsonschema:"user identifier"`
}

// UpdateUserInput declares the update_user argument schema; all fields but
// id are optional and absent fields stay unchanged.
type UpdateUserInput struct {
	ID         string  `json:"id" jsonschema:"user identifier"`
	Email      *string `json:"email,omitempty" jsonschema:"updated email address"`
	Password   *string `json:"password,omitempty" jsonschema:"updated password"`
	Name       *string `json:"name,omitempty" jsonschema:"updated name"`
	PictureURL *string `json:"pictureUrl,omitempty" jsonschema:"updated picture URL"`
}

// ListUsersInput is empty; get_all_users takes no arguments.
type ListUsersInput struct{}

type ListUsersResult struct {
	Users []UserPayload `json:"users" jsonschema:"every stored user"`
}

type DeleteUserResult struct {
	ID      string `json:"id" jsonschema:"deleted user identifier"`
	Deleted bool   `json:"deleted" jsonschema:"whether the user was removed"`
}

func CreateUserTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_user",
		Description: "Create a new user with email, password, name, and optional picture URL",
	}
}

func GetAllUsersTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_all_users",
		Description: "Retrieve all users from the database",
	}
}

func GetUserByIDTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_user_by_id",
		Description: "Get a specific user by their ID",
	}
}

func UpdateUserTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_user",
		Description: "Update an existing user by ID",
	}
}

func DeleteUserTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_user",
		Description: "Delete a user by their ID",
	}
}

func CreateUserHandler(svc *application.UserService) mcp.ToolHandlerFor[CreateUserInput, UserPayload] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in CreateUserInput) (*mcp.CallToolResult, UserPayload, error) {
		u, err := svc.CreateUser(ctx, application.CreateUserInput{
			Email:      in.Email,
			Password:   in.Password,
			Name:       in.Name,
			PictureURL: in.PictureURL,
		})
		if err != nil {
			return nil, UserPayload{}, err
		}
		return nil, userPayload(u), nil
	}
}

func GetAllUsersHandler(svc *application.UserService) mcp.ToolHandlerFor[ListUsersInput, ListUsersResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListUsersInput) (*mcp.CallToolResult, ListUsersResult, error) {
		users, err := svc.GetAllUsers(ctx)
		if err != nil {
			return nil, ListUsersResult{}, err
		}
		out := ListUsersResult{Users: make([]UserPayload, 0, len(users))}
		for i := range users {
			out.Users = append(out.Users, userPayload(&users[i]))
		}
		return nil, out, nil
	}
}

func GetUserByIDHandler(svc *application.UserService) mcp.ToolHandlerFor[GetUserInput, UserPayload] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in GetUserInput) (*mcp.CallToolResult, UserPayload, error) {
		u, err := svc.GetUserByID(ctx, in.ID)
		if err != nil {
			return nil, UserPayload{}, err
		}
		return nil, userPayload(u), nil
	}
}

func UpdateUserHandler(svc *application.UserService) mcp.ToolHandlerFor[UpdateUserInput, UserPayload] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UpdateUserInput) (*mcp.CallToolResult, UserPayload, error) {
		u, err := svc.UpdateUser(ctx, in.ID, application.UpdateUserInput{
			Email:      in.Email,
			Password:   in.Password,
			Name:       in.Name,
			PictureURL: in.PictureURL,
		})
		if err != nil {
			return nil, UserPayload{}, err
		}
		return nil, userPayload(u), nil
	}
}

func DeleteUserHandler(svc *application.UserService) mcp.ToolHandlerFor[GetUserInput, DeleteUserResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in GetUserInput) (*mcp.CallToolResult, DeleteUserResult, error) {
		if err := svc.DeleteUser(ctx, in.ID); err != nil {
			return nil, DeleteUserResult{}, err
		}
		return nil, DeleteUserResult{ID: in.ID, Deleted: true}, nil
	}
}
