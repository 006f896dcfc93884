// Package main provides data seeding for SealGate.
//
// Reads a YAML fixture describing a project, its investor roster, and a demo
// envelope, then creates everything through the same use cases the API uses.
// Intended for development environments; seeding is idempotent per project
// name.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	entproject "sealgate.io/sealgate/ent/project"
	"sealgate.io/sealgate/internal/config"
	"sealgate.io/sealgate/internal/infrastructure"
	"sealgate.io/sealgate/internal/notification"
	"sealgate.io/sealgate/internal/pkg/canonical"
	"sealgate.io/sealgate/internal/pkg/logger"
	"sealgate.io/sealgate/internal/storage"
	"sealgate.io/sealgate/internal/token"
	"sealgate.io/sealgate/internal/usecase"
)

type fixture struct {
	Project struct {
		Name      string `yaml:"name"`
		Investors []struct {
			Name          string  `yaml:"name"`
			Email         string  `yaml:"email"`
			Role          string  `yaml:"role"`
			RoutingOrder  int     `yaml:"routing_order"`
			UnitsInvested float64 `yaml:"units_invested"`
		} `yaml:"investors"`
	} `yaml:"project"`
	Envelope struct {
		Subject        string `yaml:"subject"`
		Message        string `yaml:"message"`
		RequesterName  string `yaml:"requester_name"`
		RequesterEmail string `yaml:"requester_email"`
	} `yaml:"envelope"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	fix, err := loadFixture()
	if err != nil {
		return err
	}

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()
	if err := db.AutoMigrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	store, err := storage.NewMinioStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("init object store: %w", err)
	}

	client := db.EntClient
	logger.Info("Starting data seeding...")

	existing, err := client.Project.Query().
		Where(entproject.Name(fix.Project.Name)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check project: %w", err)
	}
	if existing {
		logger.Info("Seed project already exists, nothing to do",
			zap.String("name", fix.Project.Name))
		return nil
	}

	accessToken, err := config.GenerateSecureRandomHex(24)
	if err != nil {
		return err
	}
	proj, err := client.Project.Create().
		SetID(uuid.NewString()).
		SetName(fix.Project.Name).
		SetAccessToken(accessToken).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	investorIDs := make([]string, 0, len(fix.Project.Investors))
	for _, inv := range fix.Project.Investors {
		create := client.ProjectInvestor.Create().
			SetID(uuid.NewString()).
			SetProjectID(proj.ID).
			SetName(inv.Name).
			SetEmail(inv.Email).
			SetUnitsInvested(inv.UnitsInvested)
		if inv.Role != "" {
			create.SetRole(inv.Role)
		}
		if inv.RoutingOrder > 0 {
			create.SetRoutingOrder(inv.RoutingOrder)
		}
		row, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("create investor %s: %w", inv.Email, err)
		}
		investorIDs = append(investorIDs, row.ID)
	}

	pdf, err := samplePDF(fix.Envelope.Subject)
	if err != nil {
		return err
	}
	key := storage.UploadKey(proj.ID, "agreement.pdf")
	if err := store.Put(ctx, key, pdf, "application/pdf"); err != nil {
		return fmt.Errorf("upload sample document: %w", err)
	}
	doc, err := client.Document.Create().
		SetID(uuid.NewString()).
		SetProjectID(proj.ID).
		SetFilename("agreement.pdf").
		SetStorageKey(key).
		SetSha256(canonical.SHA256Hex(pdf)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	input := usecase.CreateEnvelopeInput{
		ProjectID:      proj.ID,
		DocumentID:     doc.ID,
		Subject:        fix.Envelope.Subject,
		Message:        fix.Envelope.Message,
		RequesterName:  fix.Envelope.RequesterName,
		RequesterEmail: fix.Envelope.RequesterEmail,
	}
	for i, investorID := range investorIDs {
		signerKey := fmt.Sprintf("signer%d", i+1)
		input.Signers = append(input.Signers, usecase.SignerSpec{
			Key:        signerKey,
			InvestorID: investorID,
		})
		y := 144.0 + float64(i)*110
		input.Fields = append(input.Fields,
			usecase.FieldSpec{
				Page: 1, X: 72, Y: y + 40, W: 180, H: 80,
				Type: "signature", SignerKey: signerKey,
			},
			usecase.FieldSpec{
				Page: 1, X: 300, Y: y + 40, W: 120, H: 16,
				Type: "date", SignerKey: signerKey,
			},
		)
	}

	env, err := usecase.NewCreateEnvelopeUseCase(client).Execute(ctx, input)
	if err != nil {
		return fmt.Errorf("create envelope: %w", err)
	}

	codec := token.NewCodec([]byte(cfg.Security.SigningSecret), "sealgate")
	for _, sig := range env.Edges.Signers {
		tok, err := codec.Issue(sig.ID, env.ID)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		logger.Info("signing link",
			zap.String("signer", sig.Email),
			zap.String("url", notification.SignURL(cfg.Signing.BaseURL, tok)),
		)
	}

	logger.Info("Data seeding completed successfully",
		zap.String("project_id", proj.ID),
		zap.String("project_access_token", accessToken),
		zap.String("envelope_id", env.ID),
	)
	return nil
}

// loadFixture reads the YAML fixture from argv[1] or falls back to built-in
// demo data.
func loadFixture() (*fixture, error) {
	var fix fixture
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			return nil, fmt.Errorf("read fixture: %w", err)
		}
		if err := yaml.Unmarshal(data, &fix); err != nil {
			return nil, fmt.Errorf("parse fixture: %w", err)
		}
	} else {
		yamlDefault := []byte(`
project:
  name: Demo Fund I
  investors:
    - name: Alice Ystad
      email: alice@example.com
      role: Investor
      routing_order: 1
      units_invested: 25000
    - name: Bob Renner
      email: bob@example.com
      role: Investor
      routing_order: 2
      units_invested: 10000
envelope:
  subject: Subscription Agreement
  message: Please review and sign the subscription agreement.
  requester_name: Fund Manager
  requester_email: manager@example.com
`)
		if err := yaml.Unmarshal(yamlDefault, &fix); err != nil {
			return nil, fmt.Errorf("parse built-in fixture: %w", err)
		}
	}
	if fix.Project.Name == "" {
		return nil, fmt.Errorf("fixture: project.name is required")
	}
	return &fix, nil
}

func samplePDF(title string) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetModificationDate(time.Unix(0, 0).UTC())
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(72, 80, title)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(72, 110, "This demo agreement was generated by the seed command.")
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render sample pdf: %w", err)
	}
	return buf.Bytes(), nil
}
