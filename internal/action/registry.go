// Package action is the dispatch table for game actions, shared by the HTTP
// action endpoint, the chat tool loop and the MCP server. Every tool carries
// a JSON Schema for its arguments; dispatch records an audit entry.
package action

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/annakobylinska4-wq/life-game/internal/audit"
	"github.com/annakobylinska4-wq/life-game/internal/config"
	"github.com/annakobylinska4-wq/life-game/internal/estate"
	"github.com/annakobylinska4-wq/life-game/internal/home"
	"github.com/annakobylinska4-wq/life-game/internal/joboffice"
	"github.com/annakobylinska4-wq/life-game/internal/johnlewis"
	"github.com/annakobylinska4-wq/life-game/internal/life"
	"github.com/annakobylinska4-wq/life-game/internal/shop"
	"github.com/annakobylinska4-wq/life-game/internal/university"
	"github.com/annakobylinska4-wq/life-game/internal/workplace"
)

// Name identifies one game action.
type Name string

const (
	AttendLecture    Name = "attend_lecture"
	EnrollCourse     Name = "enroll_course"
	GetJob           Name = "get_job"
	ApplyForJob      Name = "apply_for_job"
	Work             Name = "work"
	BuyFood          Name = "buy_food"
	PurchaseFoodItem Name = "purchase_food_item"
	Rest             Name = "rest"
	BrowseJohnLewis  Name = "browse_john_lewis"
	PurchaseClothing Name = "purchase_clothing"
	BrowseFlats      Name = "browse_flats"
	RentFlat         Name = "rent_flat"
)

const emptySchema = `{"type":"object","properties":{},"required":[]}`

// Args holds schema-validated tool arguments.
type Args map[string]any

// String returns a string argument; validation guarantees the type.
func (a Args) String(key string) string {
	s, _ := a[key].(string)
	return s
}

// Int returns an integer argument. JSON numbers arrive as float64.
func (a Args) Int(key string) int {
	f, _ := a[key].(float64)
	return int(f)
}

// Tool is one dispatchable game action: its wire description, the location
// it belongs to, and how to build the executable rule from its arguments.
type Tool struct {
	Name        Name
	Description string
	Location    life.Location
	Schema      json.RawMessage

	compiled *jsonschema.Schema
	build    func(r *Registry, a Args) life.RuleFunc
	post     func(*life.PlayerState)
}

// Result is what a dispatched tool reports back, shaped for the chat
// transcript.
type Result struct {
	Name    Name   `json:"name"`
	OK      bool   `json:"success"`
	Message string `json:"message"`
}

// Registry binds every tool name to its schema and rule.
type Registry struct {
	rules   config.GameRules
	auditor *audit.Logger
	tools   []*Tool
	byName  map[Name]*Tool
	visits  map[life.Location]Name
}

// NewRegistry compiles the tool table. The auditor may be nil.
func NewRegistry(rules config.GameRules, auditor *audit.Logger) *Registry {
	r := &Registry{
		rules:   rules,
		auditor: auditor,
		byName:  map[Name]*Tool{},
		visits: map[life.Location]Name{
			life.LocationHome:        Rest,
			life.LocationWorkplace:   Work,
			life.LocationUniversity:  AttendLecture,
			life.LocationShop:        BuyFood,
			life.LocationJohnLewis:   BrowseJohnLewis,
			life.LocationJobOffice:   GetJob,
			life.LocationEstateAgent: BrowseFlats,
		},
	}

	updateLook := func(s *life.PlayerState) { s.UpdateLook() }

	r.add(&Tool{
		Name:        AttendLecture,
		Description: "Attend a lecture at university. Requires being enrolled in a course. Each lecture progresses you toward completing your current course.",
		Location:    life.LocationUniversity,
		Schema:      json.RawMessage(emptySchema),
		build:       func(*Registry, Args) life.RuleFunc { return university.AttendLecture() },
	})
	r.add(&Tool{
		Name:        EnrollCourse,
		Description: "Enroll in a university course. Available courses: middle_school, high_school, vocational, bachelor_arts, bachelor_science, bachelor_business, master_arts, master_science, mba, phd, executive_mba. Prerequisites required for advanced courses.",
		Location:    life.LocationUniversity,
		Schema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"course_id": {
					"type": "string",
					"description": "The ID of the course to enroll in (e.g., 'middle_school', 'high_school', 'bachelor_science')"
				}
			},
			"required": ["course_id"]
		}`),
		build: func(_ *Registry, a Args) life.RuleFunc { return university.EnrollCourse(a.String("course_id")) },
	})
	r.add(&Tool{
		Name:        GetJob,
		Description: "Visit the job office to automatically get the best available job based on your qualifications and appearance. Better education and appearance unlock higher-paying jobs.",
		Location:    life.LocationJobOffice,
		Schema:      json.RawMessage(emptySchema),
		build:       func(*Registry, Args) life.RuleFunc { return joboffice.GetJob() },
	})
	r.add(&Tool{
		Name:        ApplyForJob,
		Description: "Apply for a specific job by title. Requires appropriate education qualifications and appearance level. Higher-paying jobs need better appearance (look level).",
		Location:    life.LocationJobOffice,
		Schema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"job_title": {
					"type": "string",
					"description": "The title of the job to apply for (e.g., 'Junior Developer', 'Marketing Manager')"
				}
			},
			"required": ["job_title"]
		}`),
		build: func(_ *Registry, a Args) life.RuleFunc { return joboffice.ApplyForJob(a.String("job_title")) },
	})
	r.add(&Tool{
		Name:        Work,
		Description: "Go to work and earn money based on your current job and wage. Increases tiredness. Requires having a job first.",
		Location:    life.LocationWorkplace,
		Schema:      json.RawMessage(emptySchema),
		build:       func(r *Registry, _ Args) life.RuleFunc { return workplace.Work(r.rules) },
	})
	r.add(&Tool{
		Name:        BuyFood,
		Description: "Buy food from the shop (random affordable item). Food reduces hunger immediately and is not stored in inventory.",
		Location:    life.LocationShop,
		Schema:      json.RawMessage(emptySchema),
		build:       func(*Registry, Args) life.RuleFunc { return shop.BuyFood() },
	})
	r.add(&Tool{
		Name:        PurchaseFoodItem,
		Description: "Purchase a specific food item from the shop. Items include: Apple, Banana, Bread, Milk, Eggs, Cheese, Chicken, Beef, Rice, Pasta, Vegetables, Pizza, Sandwich, Coffee, Chocolate. Food reduces hunger based on calories.",
		Location:    life.LocationShop,
		Schema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"item_name": {
					"type": "string",
					"description": "The name of the food item to purchase (e.g., 'Apple', 'Pizza')"
				}
			},
			"required": ["item_name"]
		}`),
		build: func(_ *Registry, a Args) life.RuleFunc { return shop.PurchaseFood(a.String("item_name")) },
	})
	r.add(&Tool{
		Name:        Rest,
		Description: "Rest at home to reduce tiredness and recover energy. Better flats provide better rest benefits and happiness boosts.",
		Location:    life.LocationHome,
		Schema:      json.RawMessage(emptySchema),
		build:       func(*Registry, Args) life.RuleFunc { return home.Rest() },
	})
	r.add(&Tool{
		Name:        BrowseJohnLewis,
		Description: "Browse John Lewis and buy a random affordable item. Items include work clothes (suits, shirts, shoes) that improve your appearance for job applications.",
		Location:    life.LocationJohnLewis,
		Schema:      json.RawMessage(emptySchema),
		build:       func(r *Registry, _ Args) life.RuleFunc { return johnlewis.Browse(r.rules) },
		post:        updateLook,
	})
	r.add(&Tool{
		Name:        PurchaseClothing,
		Description: "Purchase a specific clothing item from John Lewis. Available: Formal Suit, Blazer, Dress Shirt, Oxford Shirt, Dress Trousers, Chinos, Oxford Shoes, Brogues, Silk Tie, Leather Belt, Waistcoat, Cufflinks. Better clothes improve your appearance (look level) for jobs.",
		Location:    life.LocationJohnLewis,
		Schema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"item_name": {
					"type": "string",
					"description": "The name of the clothing item to purchase (e.g., 'Formal Suit', 'Oxford Shoes')"
				}
			},
			"required": ["item_name"]
		}`),
		build: func(r *Registry, a Args) life.RuleFunc { return johnlewis.PurchaseItem(r.rules, a.String("item_name")) },
		post:  updateLook,
	})
	r.add(&Tool{
		Name:        BrowseFlats,
		Description: "Visit the estate agent to view available flats for rent. Shows your current accommodation and available options.",
		Location:    life.LocationEstateAgent,
		Schema:      json.RawMessage(emptySchema),
		build:       func(*Registry, Args) life.RuleFunc { return estate.Browse() },
	})
	r.add(&Tool{
		Name:        RentFlat,
		Description: "Rent a flat at the specified tier. Tier 0=Homeless (no rent), Tier 1=Dingy Bedsit (£10/turn), Tier 2=Basic Studio (£25/turn), Tier 3=Comfortable Flat (£50/turn), Tier 4=Stylish Apartment (£100/turn), Tier 5=Luxury Penthouse (£200/turn). Better flats provide better rest.",
		Location:    life.LocationEstateAgent,
		Schema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"tier": {
					"type": "integer",
					"description": "The flat tier to rent (0-5)",
					"minimum": 0,
					"maximum": 5
				}
			},
			"required": ["tier"]
		}`),
		build: func(_ *Registry, a Args) life.RuleFunc { return estate.RentFlat(a.Int("tier")) },
	})

	return r
}

func (r *Registry) add(t *Tool) {
	t.compiled = jsonschema.MustCompileString(string(t.Name)+".json", string(t.Schema))
	r.tools = append(r.tools, t)
	r.byName[t.Name] = t
}

// Tools returns every tool in registration order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, *t)
	}
	return out
}

// ToolsFor returns the tools usable at one location.
func (r *Registry) ToolsFor(loc life.Location) []Tool {
	var out []Tool
	for _, t := range r.tools {
		if t.Location == loc {
			out = append(out, *t)
		}
	}
	return out
}

// Execute validates the arguments against the tool's schema and applies the
// tool to the state. It never panics; argument and dispatch problems come
// back as failed results. The state is mutated in place on success, so
// callers decide whether to persist it.
func (r *Registry) Execute(user string, name Name, rawArgs json.RawMessage, s *life.PlayerState) Result {
	tool, ok := r.byName[name]
	if !ok {
		return Result{Name: name, Message: fmt.Sprintf("Unknown tool: %s", name)}
	}

	var v any = map[string]any{}
	if len(rawArgs) > 0 {
		if err := json.Unmarshal(rawArgs, &v); err != nil {
			return Result{Name: name, Message: fmt.Sprintf("Invalid arguments for %s: %v", name, err)}
		}
	}
	if err := tool.compiled.Validate(v); err != nil {
		return Result{Name: name, Message: fmt.Sprintf("Invalid arguments for %s: %v", name, err)}
	}
	args, _ := v.(map[string]any)

	r.auditor.Record(user, string(name))
	out := tool.build(r, Args(args))(s)
	if out.OK && tool.post != nil {
		tool.post(s)
	}
	return Result{Name: name, OK: out.OK, Message: out.Message}
}

// VisitExec resolves a plain location visit to its default tool: the rule
// with the audit hook bound to user, plus the wrapper options for the action
// endpoint. False for unknown locations.
func (r *Registry) VisitExec(user string, loc life.Location) (life.RuleFunc, life.ExecOptions, bool) {
	name, ok := r.visits[loc]
	if !ok {
		return nil, life.ExecOptions{}, false
	}
	tool := r.byName[name]
	rule := tool.build(r, Args{})
	wrapped := func(s *life.PlayerState) life.Outcome {
		r.auditor.Record(user, string(tool.Name))
		return rule(s)
	}
	return wrapped, life.ExecOptions{CheckOpeningHours: true, PostCallback: tool.post}, true
}
