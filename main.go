package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"google.golang.org/genai"

	"github.com/storefront-support/server/internal/agent/graph"
	"github.com/storefront-support/server/internal/agent/model"
	"github.com/storefront-support/server/internal/agent/repo"
	"github.com/storefront-support/server/internal/agent/tools"
	"github.com/storefront-support/server/internal/auth"
	"github.com/storefront-support/server/internal/catalog"
	"github.com/storefront-support/server/internal/core"
	"github.com/storefront-support/server/internal/orders"
	"github.com/storefront-support/server/internal/refund"
	"github.com/storefront-support/server/internal/search"
	"github.com/storefront-support/server/internal/session"
	logx "github.com/storefront-support/server/pkg/logger"
	pkgredis "github.com/storefront-support/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the support agent,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	// Infrastructure
	Redis pkgredis.Config

	Environment string `envconfig:"APP_ENV" default:"development"`

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Agent configs
	Response     model.ResponseModelConfig
	Embedding    model.EmbeddingConfig
	Prompt       model.PromptConfig
	Conversation model.ConversationConfig
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(envCfg.Environment)})

	rdb, err := envCfg.Redis.New()
	if err != nil {
		log.Fatalf("Failed to initialise Redis client: %v", err)
	}
	defer rdb.Close()

	logx.Info().Msg("connected to Redis")

	ttl, err := time.ParseDuration(envCfg.Conversation.TTL)
	if err != nil {
		log.Fatalf("Invalid CONVERSATION_TTL '%s': %v", envCfg.Conversation.TTL, err)
	}

	// Seed demo data so the agent has something to work with.
	catalogStore := catalog.NewRedisStore(rdb)
	if err := catalog.Seed(ctx, catalogStore); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	orderStore := orders.NewRedisStore(rdb)
	if err := orders.Seed(ctx, orderStore); err != nil {
		log.Fatalf("Failed to seed orders: %v", err)
	}

	// Embedding provider with retry; demo runs without one fall back to
	// keyword search.
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  envCfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	embedder := &search.RetryingEmbedder{
		Provider: search.NewGeminiEmbedder(genaiClient, envCfg.Embedding.Model),
		Policy:   search.DefaultRetryPolicy(),
	}

	sessions := session.NewRedisMemoryStore(rdb, ttl)
	engine := search.NewEngine(catalogStore, embedder, sessions)
	pipeline := refund.NewPipeline(orderStore)

	cfg := graph.Config{
		APIKey:           envCfg.APIKey,
		BaseURL:          envCfg.BaseURL,
		ResponseModel:    envCfg.Response,
		Prompt:           envCfg.Prompt,
		Conversation:     envCfg.Conversation,
		ConversationRepo: repo.NewRedisConversationRepository(rdb, ttl),
		ToolDeps:         tools.NewDeps(engine, catalogStore, orderStore, pipeline, sessions),
	}

	runner, err := graph.BuildResponseGraph(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to build graph: %v", err)
	}

	demoTurns := []struct {
		description string
		query       string
	}{
		{
			description: "Product discovery with a price constraint",
			query:       "I'm looking for a laptop under $1200",
		},
		{
			description: "Follow-up on the last mentioned product",
			query:       "Tell me more about it",
		},
		{
			description: "Order tracking",
			query:       "Where is my order ORD-12345?",
		},
		{
			description: "Refund request without a reason",
			query:       "I'd like a refund for ORD-12345",
		},
		{
			description: "Refund reason supplied",
			query:       "The laptop arrived with a cracked screen",
		},
	}

	conversationID := "demo-conversation-001"

	// demo login: issue a session token and resolve it back to the customer
	tokenStore := auth.NewRedisTokenStore(rdb, ttl)
	token, err := tokenStore.Issue(ctx, "CUST-001")
	if err != nil {
		log.Fatalf("Failed to issue session token: %v", err)
	}
	userID, err := tokenStore.Resolve(ctx, token)
	if err != nil {
		log.Fatalf("Failed to resolve session token: %v", err)
	}

	for i, turn := range demoTurns {
		fmt.Printf("\nTurn %d: %s\n", i+1, turn.description)
		fmt.Printf("Customer: %s\n", turn.query)

		response, err := runner.Invoke(ctx, model.QueryInput{
			ConversationID: conversationID,
			UserID:         userID,
			Query:          turn.query,
		})
		if err != nil {
			log.Fatalf("Failed to invoke graph for turn %d: %v", i+1, err)
		}

		fmt.Printf("Agent: %s\n", response)

		// slight delay between turns for readability
		time.Sleep(500 * time.Millisecond)
	}
}
