// README: Terminal client; one in-memory session against the real planner.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"wanderai/internal/ai"
	"wanderai/internal/kb"
	"wanderai/internal/maps"
	"wanderai/internal/modules/chat"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()

	engine, err := kb.Load(os.Getenv("WANDERAI_KB_PATH"))
	if err != nil {
		log.Fatalf("knowledge base: %v", err)
	}

	var routes *maps.RouteService
	if mapsKey := os.Getenv("MAPS_API_KEY"); mapsKey != "" {
		if routes, err = maps.NewRouteService(mapsKey); err != nil {
			log.Fatalf("maps init: %v", err)
		}
	}

	home := os.Getenv("WANDERAI_HOME_BASE")
	if home == "" {
		home = "Pune"
	}

	planner, err := ai.NewGeminiPlanner(ctx, apiKey, engine, routes, home)
	if err != nil {
		log.Fatalf("planner init: %v", err)
	}
	defer planner.Close()

	svc := chat.NewService(planner, 30*time.Second, time.Now().UnixNano())
	sess := chat.NewSession()

	fmt.Println("WanderAI trip planner. Describe a trip, or type 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			break
		}

		res, err := svc.ProcessTurn(ctx, sess, line)
		if err != nil {
			log.Fatalf("turn failed: %v", err)
		}
		fmt.Println(res.Response)
	}
}
