// Package mcpserver exposes the game actions as MCP tools over stdio, so an
// LLM agent can play a single user's save directly.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/annakobylinska4-wq/life-game/internal/action"
	"github.com/annakobylinska4-wq/life-game/internal/life"
)

// Game binds the tool handlers to one user's state store.
type Game struct {
	engine   life.Engine
	registry *action.Registry
	repo     life.Repo
	user     string
}

// NewGame wires the MCP tool surface for user.
func NewGame(engine life.Engine, registry *action.Registry, repo life.Repo, user string) *Game {
	return &Game{engine: engine, registry: registry, repo: repo, user: user}
}

type emptyInput struct{}

type enrollCourseInput struct {
	CourseID string `json:"course_id" jsonschema:"the ID of the course to enroll in (e.g. 'middle_school', 'bachelor_science')"`
}

type applyJobInput struct {
	JobTitle string `json:"job_title" jsonschema:"the title of the job to apply for"`
}

type itemInput struct {
	ItemName string `json:"item_name" jsonschema:"the name of the item to purchase"`
}

type rentFlatInput struct {
	Tier int `json:"tier" jsonschema:"the flat tier to rent (0-5)"`
}

// actionOutput is the structured result of every tool: whether the action
// took effect, its player-facing message and the post-action state snapshot.
type actionOutput struct {
	Success bool           `json:"success" jsonschema:"whether the action took effect"`
	Message string         `json:"message" jsonschema:"the player-facing outcome message"`
	State   life.StateView `json:"state" jsonschema:"the game state after the action"`
}

type stateOutput struct {
	State life.StateView `json:"state" jsonschema:"the current game state"`
}

// run dispatches one tool call against the store. The day rolls over when a
// successful action leaves the clock under the threshold, matching the chat
// tool loop.
func (g *Game) run(name action.Name, rawArgs json.RawMessage) (actionOutput, error) {
	var res action.Result
	st, err := g.repo.Mutate(func(s *life.PlayerState) bool {
		res = g.registry.Execute(g.user, name, rawArgs, s)
		if res.OK {
			g.engine.MaybeIncrementTurn(s)
			g.engine.CheckEndgame(s, "")
		}
		return res.OK
	})
	if err != nil {
		return actionOutput{}, fmt.Errorf("mutate state: %w", err)
	}
	return actionOutput{Success: res.OK, Message: res.Message, State: g.engine.View(st)}, nil
}

func addTool[I any](srv *mcp.Server, g *Game, name action.Name) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        string(name),
		Description: g.describe(name),
	}, func(_ context.Context, _ *mcp.CallToolRequest, input I) (*mcp.CallToolResult, actionOutput, error) {
		raw, err := json.Marshal(input)
		if err != nil {
			return nil, actionOutput{}, fmt.Errorf("marshal arguments: %w", err)
		}
		out, err := g.run(name, raw)
		if err != nil {
			return nil, actionOutput{}, err
		}
		return nil, out, nil
	})
}

func (g *Game) describe(name action.Name) string {
	for _, t := range g.registry.Tools() {
		if t.Name == name {
			return t.Description
		}
	}
	return string(name)
}

// NewServer builds the MCP server with every game action registered, plus a
// read-only state tool.
func NewServer(g *Game, version string) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: "life-game", Version: version}, nil)

	addTool[emptyInput](srv, g, action.AttendLecture)
	addTool[enrollCourseInput](srv, g, action.EnrollCourse)
	addTool[emptyInput](srv, g, action.GetJob)
	addTool[applyJobInput](srv, g, action.ApplyForJob)
	addTool[emptyInput](srv, g, action.Work)
	addTool[emptyInput](srv, g, action.BuyFood)
	addTool[itemInput](srv, g, action.PurchaseFoodItem)
	addTool[emptyInput](srv, g, action.Rest)
	addTool[emptyInput](srv, g, action.BrowseJohnLewis)
	addTool[itemInput](srv, g, action.PurchaseClothing)
	addTool[emptyInput](srv, g, action.BrowseFlats)
	addTool[rentFlatInput](srv, g, action.RentFlat)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_game_state",
		Description: "Get the current game state: money, stats, job, course, flat and remaining time.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, stateOutput, error) {
		st, err := g.repo.Get()
		if err != nil {
			return nil, stateOutput{}, fmt.Errorf("load state: %w", err)
		}
		return nil, stateOutput{State: g.engine.View(st)}, nil
	})

	return srv
}
