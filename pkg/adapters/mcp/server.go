package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/canova"
	"github.com/aretw0/canova/internal/presentation/graph"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/dsl"
	"github.com/aretw0/canova/pkg/flow"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NextResponse is the outcome of the next_page tool.
type NextResponse struct {
	Step    flow.Step `json:"step" jsonschema_description:"Where the filler goes next"`
	Submit  bool      `json:"submit" jsonschema_description:"Indicates the current page is the last one and the form should be submitted"`
	History []string  `json:"history" jsonschema_description:"Pages left so far, for back navigation"`
}

// Server exposes the Canova flow engine as an MCP Server.
type Server struct {
	engine    *canova.Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine *canova.Engine) *Server {
	s := &Server{
		engine:    engine,
		logger:    engine.Logger(),
		mcpServer: server.NewMCPServer("canova-mcp", strings.TrimSpace(canova.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

const formDescription = "Form document as JSON (or YAML): a form object with a pages list, or a bare list of pages"

func (s *Server) registerTools() {
	// TOOL: build_flow
	buildTool := mcp.NewTool("build_flow",
		mcp.WithDescription("Derive the navigation graph (nextPageId/prevPageId) of a form and report orphans, claim conflicts and dangling branch targets."),
		mcp.WithString("form", mcp.Required(), mcp.Description(formDescription)),
		mcp.WithOutputSchema[flow.BuildResult](),
	)
	s.mcpServer.AddTool(buildTool, mcp.NewStructuredToolHandler(s.handleBuildFlow))

	// TOOL: next_page
	nextTool := mcp.NewTool("next_page",
		mcp.WithDescription("Decide which page a filler sees after the current one, given the answers so far."),
		mcp.WithString("form", mcp.Required(), mcp.Description(formDescription)),
		mcp.WithString("page_id", mcp.Required(), mcp.Description("Current page ID")),
		mcp.WithString("answers", mcp.Description("JSON object mapping question IDs to answers (optional)")),
		mcp.WithString("history", mcp.Description("JSON array of pages left so far (optional)")),
		mcp.WithOutputSchema[NextResponse](),
	)
	s.mcpServer.AddTool(nextTool, mcp.NewStructuredToolHandler(s.handleNextPage))

	// TOOL: lint_flow
	lintTool := mcp.NewTool("lint_flow",
		mcp.WithDescription("Run strict checks over the branching rules of a form."),
		mcp.WithString("form", mcp.Required(), mcp.Description(formDescription)),
		mcp.WithOutputSchema[flow.Report](),
	)
	s.mcpServer.AddTool(lintTool, mcp.NewStructuredToolHandler(s.handleLintFlow))

	// TOOL: flowchart
	s.mcpServer.AddTool(mcp.NewTool("flowchart",
		mcp.WithDescription("Render the navigation graph of a form as a Mermaid flowchart."),
		mcp.WithString("form", mcp.Required(), mcp.Description(formDescription)),
		mcp.WithString("current_page_id", mcp.Description("Page to highlight (optional)")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		form, err := decodeForm(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result := s.engine.Build(ctx, form.ID, form.Pages)
		current, _ := args["current_page_id"].(string)
		chart := graph.GenerateMermaid(result.Pages, &graph.GraphOverlay{
			CurrentPage: current,
			Orphans:     result.Orphans,
		})
		return mcp.NewToolResultText(chart), nil
	})
}

func decodeForm(args map[string]any) (*domain.Form, error) {
	doc, _ := args["form"].(string)
	if strings.TrimSpace(doc) == "" {
		return nil, errors.New("form is required")
	}
	return dsl.Decode([]byte(doc))
}

// Handler methods for structured tools

func (s *Server) handleBuildFlow(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (flow.BuildResult, error) {
	form, err := decodeForm(args)
	if err != nil {
		return flow.BuildResult{}, err
	}
	return *s.engine.Build(ctx, form.ID, form.Pages), nil
}

func (s *Server) handleNextPage(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (NextResponse, error) {
	form, err := decodeForm(args)
	if err != nil {
		return NextResponse{}, err
	}
	form.Pages = s.engine.Build(ctx, form.ID, form.Pages).Pages

	pageID, _ := args["page_id"].(string)

	answers := domain.Answers{}
	if raw, ok := args["answers"].(string); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &answers); err != nil {
			return NextResponse{}, fmt.Errorf("answers must be a JSON object: %w", err)
		}
	}
	var history flow.History
	if raw, ok := args["history"].(string); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &history); err != nil {
			return NextResponse{}, fmt.Errorf("history must be a JSON array: %w", err)
		}
	}

	step, err := s.engine.Next(ctx, form, pageID, answers, &history)
	if err != nil {
		return NextResponse{}, err
	}
	if history == nil {
		history = flow.History{}
	}
	return NextResponse{Step: step, Submit: step.Terminal(), History: history}, nil
}

func (s *Server) handleLintFlow(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (flow.Report, error) {
	form, err := decodeForm(args)
	if err != nil {
		return flow.Report{}, err
	}
	return *s.engine.Lint(form.Pages), nil
}

func (s *Server) registerResources() {
	// EXPOSE: canova://question-types
	s.mcpServer.AddResource(mcp.NewResource("canova://question-types", "Supported question types",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(domain.QuestionTypes)
		if err != nil {
			return nil, fmt.Errorf("failed to encode question types: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "canova://question-types",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
