// Package mcp merges two tool sources behind one core.ToolProvider: native
// Go handlers registered at startup, and tools served by external MCP
// servers listed in mcp_config.json. Native tools win name collisions.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/client"
	mcpproto "github.com/mark3labs/mcp-go/mcp"

	"github.com/Jayani-123/tasbot/internal/core"
	"github.com/Jayani-123/tasbot/pkg/log"
)

// NativeHandler defines a function signature for internal tools
type NativeHandler func(ctx context.Context, args json.RawMessage) (string, error)

type Manager struct {
	mu           sync.RWMutex
	config       Config
	clients      map[string]*client.Client
	toolToClient map[string]*client.Client

	// Caching
	cachedTools []core.Tool
	cacheValid  bool

	// Native tools support
	nativeTools    map[string]NativeHandler
	nativeToolDefs []core.Tool
}

func NewManager(configPath string) (*Manager, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	return &Manager{
		config:         cfg,
		clients:        make(map[string]*client.Client),
		toolToClient:   make(map[string]*client.Client),
		nativeTools:    make(map[string]NativeHandler),
		nativeToolDefs: make([]core.Tool, 0),
	}, nil
}

// RegisterNativeTool allows adding hardcoded Go functions as tools
func (m *Manager) RegisterNativeTool(name, description string, schema json.RawMessage, handler NativeHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nativeTools[name] = handler
	m.nativeToolDefs = append(m.nativeToolDefs, core.Tool{
		Type: "function",
		Function: core.Function{
			Name:        name,
			Description: description,
			Parameters:  schema,
		},
	})
	m.cacheValid = false
}

func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Invalidate cache on start
	m.cacheValid = false

	for name, srv := range m.config.MCPServers {
		log.FromCtx(ctx).Info().Str("server", name).Msg("starting mcp connection")

		transportType, err := srv.GetTransport()
		if err != nil {
			return fmt.Errorf("server %s: %w", name, err)
		}
		transport, err := NewTransport(transportType)
		if err != nil {
			return fmt.Errorf("server %s: %w", name, err)
		}

		cli, err := transport(ctx, srv)
		if err != nil {
			return fmt.Errorf("failed to start %s: %w", name, err)
		}
		m.clients[name] = cli
	}
	return nil
}

func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for name, cli := range m.clients {
		if err := cli.Close(); err != nil {
			log.FromCtx(ctx).Error().Err(err).Str("server", name).Msg("failed to close client")
		}
	}
	return nil
}

func (m *Manager) GetTools(ctx context.Context) ([]core.Tool, error) {
	m.mu.RLock()
	if m.cacheValid {
		tools := m.cachedTools
		m.mu.RUnlock()
		return tools, nil
	}
	m.mu.RUnlock()

	// Snapshot state to avoid holding the lock during network I/O
	m.mu.RLock()
	allTools := make([]core.Tool, len(m.nativeToolDefs))
	copy(allTools, m.nativeToolDefs)
	clientsSnapshot := make(map[string]*client.Client, len(m.clients))
	for k, v := range m.clients {
		clientsSnapshot[k] = v
	}
	m.mu.RUnlock()

	type toolResult struct {
		serverName string
		tools      []mcpproto.Tool
		err        error
	}
	results := make(chan toolResult, len(clientsSnapshot))
	var wg sync.WaitGroup

	for name, cli := range clientsSnapshot {
		wg.Add(1)
		go func(n string, c *client.Client) {
			defer wg.Done()
			tCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			resp, err := c.ListTools(tCtx, mcpproto.ListToolsRequest{})
			if err != nil {
				results <- toolResult{serverName: n, err: err}
				return
			}
			results <- toolResult{serverName: n, tools: resp.Tools}
		}(name, cli)
	}

	wg.Wait()
	close(results)

	newToolToClient := make(map[string]*client.Client)

	for res := range results {
		if res.err != nil {
			log.FromCtx(ctx).Error().Err(res.err).Str("server", res.serverName).Msg("failed to list tools")
			continue
		}

		for _, t := range res.tools {
			// Native names shadow external ones
			if _, native := m.nativeTools[t.Name]; native {
				continue
			}
			newToolToClient[t.Name] = clientsSnapshot[res.serverName]

			schemaBytes, _ := json.Marshal(t.InputSchema)
			allTools = append(allTools, core.Tool{
				Type: "function",
				Function: core.Function{
					Name:        t.Name,
					Description: t.Description,
					Parameters:  schemaBytes,
				},
			})
		}
	}

	m.mu.Lock()
	m.cachedTools = allTools
	m.toolToClient = newToolToClient
	m.cacheValid = true
	m.mu.Unlock()

	return allTools, nil
}

func (m *Manager) CallTool(ctx context.Context, name string, args string) (string, error) {
	log.FromCtx(ctx).Info().Str("tool", name).Str("args", args).Msg("executing tool")

	m.mu.RLock()
	handler, native := m.nativeTools[name]
	cli, external := m.toolToClient[name]
	m.mu.RUnlock()

	if native {
		return handler(ctx, json.RawMessage(args))
	}
	if !external {
		return "", fmt.Errorf("tool not found: %s", name)
	}

	var argsMap map[string]interface{}
	if err := json.Unmarshal([]byte(args), &argsMap); err != nil {
		return "", fmt.Errorf("invalid json arguments: %w", err)
	}

	req := mcpproto.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = argsMap

	tCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	res, err := cli.CallTool(tCtx, req)
	if err != nil {
		return "", err
	}

	if res.IsError {
		return "", fmt.Errorf("tool execution failed")
	}

	var output string
	for _, content := range res.Content {
		if text, ok := content.(mcpproto.TextContent); ok {
			output += text.Text + "\n"
		} else if textPtr, ok := content.(*mcpproto.TextContent); ok {
			output += textPtr.Text + "\n"
		}
	}
	return output, nil
}
