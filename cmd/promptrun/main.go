// Command promptrun sends one prompt to an Anthropic or OpenAI model,
// selected by model name, and writes the response text to a file.
//
// Usage:
//
//	promptrun -prompt "Explain quantum computing"
//	promptrun -prompt code-review -system-prompt developer -model claude-sonnet-4
//	promptrun -prompt prompt.txt -output-path ./results -output-name answer
//	promptrun -list-models
//	promptrun -list-prompts
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/skosovsky/promptrun"
	"github.com/skosovsky/promptrun/config"
	"github.com/skosovsky/promptrun/executor"
	"github.com/skosovsky/promptrun/internal/dotenv"
	"github.com/skosovsky/promptrun/promptlib"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	prompt      string
	system      string
	model       string
	outputDir   string
	outputName  string
	configPath  string
	listModels  bool
	listPrompts bool
}

func parseFlags(args []string) (options, *flag.FlagSet, error) {
	var opts options
	fs := flag.NewFlagSet("promptrun", flag.ContinueOnError)
	fs.StringVar(&opts.prompt, "prompt", "", "user prompt: library name, file path, or literal text")
	fs.StringVar(&opts.prompt, "p", "", "shorthand for -prompt")
	fs.StringVar(&opts.system, "system-prompt", "", "system prompt: library name, file path, or literal text")
	fs.StringVar(&opts.system, "s", "", "shorthand for -system-prompt")
	fs.StringVar(&opts.model, "model", "", "model to use (default from config, gpt-5-mini)")
	fs.StringVar(&opts.model, "m", "", "shorthand for -model")
	fs.StringVar(&opts.outputDir, "output-path", "", "output directory (default from config, ai-output)")
	fs.StringVar(&opts.outputDir, "o", "", "shorthand for -output-path")
	fs.StringVar(&opts.outputName, "output-name", "", "output filename without extension (default: timestamp)")
	fs.StringVar(&opts.outputName, "n", "", "shorthand for -output-name")
	fs.StringVar(&opts.configPath, "config", config.DefaultPath, "path to YAML config file")
	fs.BoolVar(&opts.listModels, "list-models", false, "list available models and exit")
	fs.BoolVar(&opts.listPrompts, "list-prompts", false, "list prompt library entries and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}
	return opts, fs, nil
}

func run(ctx context.Context, args []string) error {
	opts, fs, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := dotenv.Load(cfg.EnvFile); err != nil {
		return fmt.Errorf("load %s: %w", cfg.EnvFile, err)
	}
	if opts.model == "" {
		opts.model = cfg.Model
	}
	if opts.outputDir == "" {
		opts.outputDir = cfg.OutputDir
	}

	lib := promptlib.New(cfg.PromptsDir)

	if opts.listPrompts {
		return printPrompts(ctx, lib)
	}
	if opts.listModels {
		printModels()
		return nil
	}

	if opts.prompt == "" {
		fs.Usage()
		return promptrun.ErrEmptyPrompt
	}

	prompt, err := lib.Resolve(opts.prompt, promptlib.KindUser)
	if err != nil {
		return fmt.Errorf("load prompt: %w", err)
	}
	var system string
	if opts.system != "" {
		system, err = lib.Resolve(opts.system, promptlib.KindSystem)
		if err != nil {
			return fmt.Errorf("load system prompt: %w", err)
		}
	}

	exec, err := executor.New(executor.Config{
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Using model: %s\n", opts.model)
	path, err := exec.Execute(ctx, executor.Job{
		Prompt:     prompt,
		System:     system,
		Model:      opts.model,
		OutputDir:  opts.outputDir,
		OutputName: opts.outputName,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Output saved to: %s\n", path)
	return nil
}

func printModels() {
	fmt.Println("Available models:")
	var last promptrun.Provider
	for _, m := range promptrun.Models() {
		if m.Provider != last {
			fmt.Printf("\n%s:\n", m.Provider)
			last = m.Provider
		}
		if m.Alias != m.Canonical {
			fmt.Printf("  %-18s -> %-28s %s\n", m.Alias, m.Canonical, m.Description)
		} else {
			fmt.Printf("  %-18s    %-28s %s\n", m.Alias, "", m.Description)
		}
	}
	fmt.Println("\nShort aliases are accepted anywhere a model name is expected.")
}

func printPrompts(ctx context.Context, lib *promptlib.Library) error {
	listing, err := lib.List(ctx)
	if err != nil {
		return err
	}
	printKind := func(title string, entries []promptlib.Entry) {
		fmt.Printf("\n%s:\n", title)
		if len(entries) == 0 {
			fmt.Println("  (none found)")
			return
		}
		for _, e := range entries {
			if e.Description != "" {
				fmt.Printf("  - %s: %s\n", e.Name, e.Description)
			} else {
				fmt.Printf("  - %s\n", e.Name)
			}
		}
	}
	fmt.Println("Prompt library:")
	printKind("User prompts", listing.User)
	printKind("System prompts", listing.System)
	return nil
}
