package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/xavierca1/ligue-outreach/internal/config"
	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/generation"
	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type generatorFactory func(cfg generation.ProviderConfig) (usecase.MessageGenerator, error)

func newLLMGenerator(cfg generation.ProviderConfig) (usecase.MessageGenerator, error) {
	llm, err := generation.NewModel(cfg)
	if err != nil {
		return nil, err
	}
	return generation.NewClient(llm), nil
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp(cfg *config.Config, newGenerator generatorFactory) *cli.App {
	app := &cli.App{
		Name:    "outreach",
		Usage:   "Enrich B2B leads and generate cold email sequences",
		Version: Version,
		Commands: []*cli.Command{
			enrichCmd(),
			promptCmd(),
			generateCmd(cfg, newGenerator),
		},
	}
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func leadFlag() cli.Flag {
	return &cli.StringFlag{Name: "lead", Aliases: []string{"l"}, Usage: "Lead profile JSON file (- for stdin, omit for the sample lead)"}
}

func productFlag() cli.Flag {
	return &cli.StringFlag{Name: "product", Aliases: []string{"p"}, Usage: "Product JSON file (omit for the sample product)"}
}

func enrichCmd() *cli.Command {
	return &cli.Command{
		Name:  "enrich",
		Usage: "Print the enriched lead profile",
		Flags: []cli.Flag{leadFlag()},
		Action: func(c *cli.Context) error {
			lead, err := loadLead(c)
			if err != nil {
				return outputError(err)
			}

			enriched, err := usecase.EnrichLead(lead)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c.App.Writer, enriched)
		},
	}
}

func promptCmd() *cli.Command {
	return &cli.Command{
		Name:  "prompt",
		Usage: "Render the prompt for one message without calling the model",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Value: string(entity.KindColdEmail), Usage: "cold_email|followup_1|followup_2"},
			&cli.StringFlag{Name: "original-subject", Usage: "Subject of the cold email, for follow-ups"},
			&cli.BoolFlag{Name: "text", Usage: "Print the system and user prompts as plain text"},
			leadFlag(),
			productFlag(),
		},
		Action: func(c *cli.Context) error {
			kind, err := entity.ParseMessageKind(c.String("kind"))
			if err != nil {
				return outputError(err)
			}
			lead, err := loadLead(c)
			if err != nil {
				return outputError(err)
			}
			product, err := loadProduct(c)
			if err != nil {
				return outputError(err)
			}

			out, err := usecase.PreviewPrompt(usecase.PreviewPromptInput{
				Lead:            lead,
				Product:         product,
				Kind:            kind,
				OriginalSubject: c.String("original-subject"),
			})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("text") {
				fmt.Fprintf(c.App.Writer, "### SYSTEM\n%s\n\n### USER\n%s\n", out.Request.System, out.Request.User)
				return nil
			}
			return outputJSON(c.App.Writer, out)
		},
	}
}

func generateCmd(cfg *config.Config, newGenerator generatorFactory) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate the full campaign: cold email plus two follow-ups",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "provider", Value: cfg.LLM.Provider, Usage: "openai|ollama"},
			&cli.StringFlag{Name: "model", Value: cfg.LLM.Model, Usage: "Model name"},
			&cli.StringFlag{Name: "base-url", Value: cfg.LLM.BaseURL, Usage: "Override the provider endpoint"},
			&cli.StringFlag{Name: "export-dir", Aliases: []string{"o"}, Value: cfg.ExportDir, Usage: "Write drafts to this directory"},
			&cli.StringFlag{Name: "from", Value: cfg.MailFrom, Usage: "From address for exported drafts"},
			&cli.BoolFlag{Name: "json", Usage: "Print the campaign as JSON"},
			leadFlag(),
			productFlag(),
		},
		Action: func(c *cli.Context) error {
			lead, err := loadLead(c)
			if err != nil {
				return outputError(err)
			}
			product, err := loadProduct(c)
			if err != nil {
				return outputError(err)
			}

			gen, err := newGenerator(generation.ProviderConfig{
				Provider: c.String("provider"),
				Model:    c.String("model"),
				BaseURL:  c.String("base-url"),
				APIKey:   cfg.LLM.APIKey,
			})
			if err != nil {
				return outputError(err)
			}

			var exporter usecase.DraftExporter
			if dir := c.String("export-dir"); dir != "" {
				exporter = mail.NewDraftExporter(dir, c.String("from"))
			}

			uc := usecase.NewGenerateCampaignUseCase(gen, nil, exporter)
			out, err := uc.Execute(c.Context, usecase.GenerateCampaignInput{Lead: lead, Product: product})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, out.Campaign)
			}
			printCampaign(c.App.Writer, out.Campaign)
			if out.ExportDir != "" {
				printExport(c.App.Writer, out.ExportDir)
			}
			return nil
		},
	}
}

func loadLead(c *cli.Context) (entity.LeadProfile, error) {
	path := c.String("lead")
	if path == "" {
		return sampleLead(), nil
	}
	var lead entity.LeadProfile
	err := readJSON(c, path, &lead)
	return lead, err
}

func loadProduct(c *cli.Context) (entity.ProductInfo, error) {
	path := c.String("product")
	if path == "" {
		return sampleProduct(), nil
	}
	var p entity.ProductInfo
	err := readJSON(c, path, &p)
	return p, err
}

func readJSON(c *cli.Context, path string, dst any) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(c.App.Reader)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if code := usecase.ErrorCode(err); code != "" {
		return cli.Exit(fmt.Sprintf("[%s] %s", code, err.Error()), 1)
	}
	return cli.Exit(err.Error(), 1)
}
