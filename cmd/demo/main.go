package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/strandkit/strand"
	"github.com/strandkit/strand/client"
)

var reader = bufio.NewReader(os.Stdin)

func main() {
	godotenv.Load()
	ctx := context.Background()

	fmt.Println("╔════════════════════════════════════════╗")
	fmt.Println("║      strand - Workflow Demo            ║")
	fmt.Println("╚════════════════════════════════════════╝")
	fmt.Println()

	// Check available providers
	providers := []struct {
		name   strand.Provider
		envKey string
		label  string
	}{
		{strand.ProviderAnthropic, "ANTHROPIC_API_KEY", "Anthropic (Claude)"},
		{strand.ProviderOpenAI, "OPENAI_API_KEY", "OpenAI (GPT)"},
		{strand.ProviderGoogle, "GOOGLE_API_KEY", "Google (Gemini)"},
	}

	var available []struct {
		name   strand.Provider
		apiKey string
		label  string
	}

	fmt.Println("Available providers:")
	for _, p := range providers {
		if key := os.Getenv(p.envKey); key != "" {
			fmt.Printf("  [%d] %s\n", len(available)+1, p.label)
			available = append(available, struct {
				name   strand.Provider
				apiKey string
				label  string
			}{p.name, key, p.label})
		}
	}

	if len(available) == 0 {
		fmt.Println("  ✗ No API keys found. Set ANTHROPIC_API_KEY, OPENAI_API_KEY, or GOOGLE_API_KEY.")
		return
	}
	fmt.Println()

	// Let user select provider
	var selected int
	if len(available) == 1 {
		selected = 0
		fmt.Printf("Using %s (only available provider)\n", available[0].label)
	} else {
		fmt.Printf("Select provider [1-%d]: ", len(available))
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(answer)
		fmt.Sscanf(answer, "%d", &selected)
		selected-- // Convert to 0-indexed
		if selected < 0 || selected >= len(available) {
			selected = 0
		}
		fmt.Printf("Using %s\n", available[selected].label)
	}
	fmt.Println()

	c, err := client.New(ctx, client.Config{
		Provider: available[selected].name,
		APIKey:   available[selected].apiKey,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
		return
	}

	for {
		indices := showMenu()
		if indices == nil {
			break
		}
		runDemos(ctx, c, indices)
		fmt.Println()
	}

	fmt.Println("\n✨ Demo complete!")
}
