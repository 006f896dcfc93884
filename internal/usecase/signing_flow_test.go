package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealgate.io/sealgate/ent"
	"sealgate.io/sealgate/internal/jobs"
	"sealgate.io/sealgate/internal/ledger"
	apperrors "sealgate.io/sealgate/internal/pkg/errors"
	"sealgate.io/sealgate/internal/pkg/logger"
	"sealgate.io/sealgate/internal/pkg/worker"
	"sealgate.io/sealgate/internal/service"
	"sealgate.io/sealgate/internal/storage"
	"sealgate.io/sealgate/internal/testutil"
	"sealgate.io/sealgate/internal/token"
)

func TestMain(m *testing.M) {
	if err := logger.Init("error", "console"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeEnqueuer struct {
	inserted []river.JobArgs
}

func (f *fakeEnqueuer) Insert(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (*rivertype.JobInsertResult, error) {
	f.inserted = append(f.inserted, args)
	return &rivertype.JobInsertResult{}, nil
}

func (f *fakeEnqueuer) emailJobs() []jobs.EmailSendArgs {
	var out []jobs.EmailSendArgs
	for _, args := range f.inserted {
		if ea, ok := args.(jobs.EmailSendArgs); ok {
			out = append(out, ea)
		}
	}
	return out
}

type harness struct {
	client   *ent.Client
	store    *storage.MemoryStore
	enqueuer *fakeEnqueuer
	codec    *token.Codec
	values   *service.FieldValueService

	createUC   *CreateEnvelopeUseCase
	sendUC     *SendEnvelopeUseCase
	signingUC  *SigningUseCase
	completeUC *CompleteSigningUseCase
	deleteUC   *DeleteEnvelopeUseCase

	projectID  string
	documentID string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := context.Background()

	client := testutil.OpenEntPostgres(t, t.Name())
	store := storage.NewMemoryStore()
	enq := &fakeEnqueuer{}
	codec := token.NewCodec([]byte("0123456789abcdef0123456789abcdef"), "test")
	values := service.NewFieldValueService()
	signingUC := NewSigningUseCase(client, codec, values)
	pools, err := worker.NewPools(ctx, worker.DefaultPoolConfig())
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)

	h := &harness{
		client:     client,
		store:      store,
		enqueuer:   enq,
		codec:      codec,
		values:     values,
		createUC:   NewCreateEnvelopeUseCase(client),
		sendUC:     NewSendEnvelopeUseCase(client, enq),
		signingUC:  signingUC,
		completeUC: NewCompleteSigningUseCase(client, signingUC, values, store, enq, pools),
		deleteUC:   NewDeleteEnvelopeUseCase(client, store),
	}

	proj, err := client.Project.Create().
		SetID(generateID()).
		SetName("Fund " + t.Name()).
		SetAccessToken("project-token-" + t.Name()).
		Save(ctx)
	require.NoError(t, err)
	h.projectID = proj.ID

	pdf := testPDF(t)
	key := storage.UploadKey(proj.ID, "agreement.pdf")
	require.NoError(t, store.Put(ctx, key, pdf, "application/pdf"))
	doc, err := client.Document.Create().
		SetID(generateID()).
		SetProjectID(proj.ID).
		SetFilename("agreement.pdf").
		SetStorageKey(key).
		Save(ctx)
	require.NoError(t, err)
	h.documentID = doc.ID
	return h
}

func testPDF(t *testing.T) []byte {
	t.Helper()
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetCreationDate(time.Unix(0, 0).UTC())
	doc.SetModificationDate(time.Unix(0, 0).UTC())
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	doc.Text(72, 72, "Agreement")
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func testSignaturePNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.Set(1, 1, color.Black)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func (h *harness) createTwoSignerEnvelope(t *testing.T) *ent.Envelope {
	t.Helper()
	env, err := h.createUC.Execute(context.Background(), CreateEnvelopeInput{
		ProjectID:  h.projectID,
		DocumentID: h.documentID,
		Subject:    "Subscription Agreement",
		Signers: []SignerSpec{
			{Key: "s1", Name: "Alice", Email: "alice@example.com", Role: "Investor"},
			{Key: "s2", Name: "Bob", Email: "bob@example.com", Role: "Investor"},
		},
		Fields: []FieldSpec{
			{Page: 1, X: 72, Y: 144, W: 180, H: 80, Type: "signature", SignerKey: "s1"},
			{Page: 1, X: 72, Y: 300, W: 180, H: 80, Type: "signature", SignerKey: "s2"},
			{Page: 1, X: 300, Y: 144, Type: "date", Role: "Investor"},
		},
	})
	require.NoError(t, err)
	require.Len(t, env.Edges.Signers, 2)
	return env
}

func fieldOfType(t *testing.T, s *Session, typ string) string {
	t.Helper()
	for _, f := range s.Fields {
		if f.Type == typ {
			return f.ID
		}
	}
	t.Fatalf("session has no %s field", typ)
	return ""
}

func (h *harness) tokenFor(t *testing.T, env *ent.Envelope, email string) string {
	t.Helper()
	for _, sig := range env.Edges.Signers {
		if sig.Email == email {
			tok, err := h.codec.Issue(sig.ID, env.ID)
			require.NoError(t, err)
			return tok
		}
	}
	t.Fatalf("no signer with email %s", email)
	return ""
}

func TestTwoSignerFlow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	env := h.createTwoSignerEnvelope(t)

	_, err := h.sendUC.Execute(ctx, SendEnvelopeInput{EnvelopeID: env.ID})
	require.NoError(t, err)
	require.Len(t, h.enqueuer.emailJobs(), 2, "one invite per signer")

	aliceTok := h.tokenFor(t, env, "alice@example.com")
	bobTok := h.tokenFor(t, env, "bob@example.com")

	// Alice opens, consents, saves, completes -> envelope keeps waiting.
	session, err := h.signingUC.Open(ctx, aliceTok, "10.0.0.1", "test-agent")
	require.NoError(t, err)
	assert.Len(t, session.Fields, 2, "own signature plus shared date field")

	require.NoError(t, h.signingUC.Consent(ctx, aliceTok, true, "10.0.0.1", "test-agent"))
	_, err = h.signingUC.SaveValues(ctx, aliceTok, map[string]interface{}{
		fieldOfType(t, session, "signature"): testSignaturePNG(t),
	}, "10.0.0.1", "test-agent")
	require.NoError(t, err)

	out, err := h.completeUC.Execute(ctx, aliceTok, nil, "10.0.0.1", "test-agent")
	require.NoError(t, err)
	assert.Equal(t, CompleteStatusWaiting, out.Status)
	assert.Equal(t, 1, out.WaitingOn)

	// Bob consents and completes -> envelope seals.
	require.NoError(t, h.signingUC.Consent(ctx, bobTok, true, "10.0.0.2", "test-agent"))
	bobSession, err := h.signingUC.Open(ctx, bobTok, "10.0.0.2", "test-agent")
	require.NoError(t, err)
	out, err = h.completeUC.Execute(ctx, bobTok, map[string]interface{}{
		fieldOfType(t, bobSession, "signature"): testSignaturePNG(t),
	}, "10.0.0.2", "test-agent")
	require.NoError(t, err)
	assert.Equal(t, CompleteStatusCompleted, out.Status)
	require.NotEmpty(t, out.SHA256Final)

	reloaded, err := h.client.Envelope.Get(ctx, env.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(reloaded.Status))

	art, err := reloaded.QueryArtifact().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, out.SHA256Final, art.Sha256Final)

	sealedPDF, err := h.store.Get(ctx, art.StorageKeyPdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(sealedPDF, []byte("%PDF")))
	_, err = h.store.Get(ctx, art.StorageKeyAudit)
	require.NoError(t, err)

	// Audit chain is intact and ends with a sealed event.
	events, err := ledger.History(ctx, h.client, env.ID)
	require.NoError(t, err)
	require.NoError(t, ledger.Verify(events))
	assert.Equal(t, "sealed", string(events[len(events)-1].Type))

	// Completion notices: both signers plus the requester.
	var completed int
	for _, job := range h.enqueuer.emailJobs() {
		if job.Notice == jobs.EmailKindCompleted {
			completed++
		}
	}
	assert.Equal(t, 3, completed)
}

func TestCompleteIsIdempotentAfterSeal(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	env, err := h.createUC.Execute(ctx, CreateEnvelopeInput{
		ProjectID:  h.projectID,
		DocumentID: h.documentID,
		Signers:    []SignerSpec{{Name: "Alice", Email: "alice@example.com"}},
	})
	require.NoError(t, err)
	_, err = h.sendUC.Execute(ctx, SendEnvelopeInput{EnvelopeID: env.ID})
	require.NoError(t, err)

	tok := h.tokenFor(t, env, "alice@example.com")
	require.NoError(t, h.signingUC.Consent(ctx, tok, true, "", ""))

	first, err := h.completeUC.Execute(ctx, tok, nil, "", "")
	require.NoError(t, err)
	require.Equal(t, CompleteStatusCompleted, first.Status)

	second, err := h.completeUC.Execute(ctx, tok, nil, "", "")
	require.NoError(t, err)
	assert.Equal(t, first.SHA256Final, second.SHA256Final)
	assert.Equal(t, first.SealedAt.Unix(), second.SealedAt.Unix())

	// Exactly one artifact row exists.
	n, err := h.client.FinalArtifact.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestResendRefreshesWithoutResettingSigners(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	env := h.createTwoSignerEnvelope(t)
	_, err := h.sendUC.Execute(ctx, SendEnvelopeInput{EnvelopeID: env.ID})
	require.NoError(t, err)

	aliceTok := h.tokenFor(t, env, "alice@example.com")
	require.NoError(t, h.signingUC.Consent(ctx, aliceTok, true, "", ""))
	out, err := h.completeUC.Execute(ctx, aliceTok, nil, "", "")
	require.NoError(t, err)
	require.Equal(t, CompleteStatusWaiting, out.Status)

	sent, err := h.sendUC.Execute(ctx, SendEnvelopeInput{
		EnvelopeID: env.ID,
		Subject:    "Updated subject",
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated subject", sent.Subject)

	for _, sig := range sent.Edges.Signers {
		if sig.Email == "alice@example.com" {
			assert.Equal(t, "completed", string(sig.Status), "re-send must not reset progress")
		}
	}

	// Second send only re-invites the pending signer.
	var invites int
	for _, job := range h.enqueuer.emailJobs() {
		if job.Notice == jobs.EmailKindInvite {
			invites++
		}
	}
	assert.Equal(t, 3, invites, "two initial invites plus one re-invite")
}

func TestSendEnvelopeWithoutSigners(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	env, err := h.createUC.Execute(ctx, CreateEnvelopeInput{
		ProjectID:  h.projectID,
		DocumentID: h.documentID,
	})
	require.NoError(t, err)

	_, err = h.sendUC.Execute(ctx, SendEnvelopeInput{EnvelopeID: env.ID})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeSignerRequired, appErr.Code)
}

func TestDraftEnvelopeRejectsSigners(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	env := h.createTwoSignerEnvelope(t)
	tok := h.tokenFor(t, env, "alice@example.com")

	_, err := h.signingUC.Open(ctx, tok, "", "")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeSignTokenInvalid, appErr.Code)
}

func TestDeleteEnvelopeCascades(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	env := h.createTwoSignerEnvelope(t)
	_, err := h.sendUC.Execute(ctx, SendEnvelopeInput{EnvelopeID: env.ID})
	require.NoError(t, err)

	require.NoError(t, h.deleteUC.Execute(ctx, env.ID))

	for _, count := range []func() (int, error){
		func() (int, error) { return h.client.Signer.Query().Count(ctx) },
		func() (int, error) { return h.client.EnvelopeField.Query().Count(ctx) },
		func() (int, error) { return h.client.Event.Query().Count(ctx) },
		func() (int, error) { return h.client.SignerFieldValue.Query().Count(ctx) },
	} {
		n, err := count()
		require.NoError(t, err)
		assert.Zero(t, n)
	}

	// The uploaded project document remains.
	docs, err := h.client.Document.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, docs)
}

func TestInvalidTokenIsOpaque(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.signingUC.Resolve(context.Background(), "not-a-token")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeSignTokenInvalid, appErr.Code)
	assert.Equal(t, "signing link is not valid", appErr.Message)
}

func (h *harness) createSingleSignerTextEnvelope(t *testing.T) *ent.Envelope {
	t.Helper()
	env, err := h.createUC.Execute(context.Background(), CreateEnvelopeInput{
		ProjectID:  h.projectID,
		DocumentID: h.documentID,
		Signers: []SignerSpec{
			{Key: "s1", Name: "Alice", Email: "alice@example.com", Role: "Investor"},
		},
		Fields: []FieldSpec{
			{Page: 1, X: 72, Y: 144, W: 120, H: 20, Type: "text", Name: "A", SignerKey: "s1"},
			{Page: 1, X: 72, Y: 180, W: 120, H: 20, Type: "text", Name: "B", SignerKey: "s1"},
		},
	})
	require.NoError(t, err)
	return env
}

func fieldNamed(t *testing.T, s *Session, name string) string {
	t.Helper()
	for _, f := range s.Fields {
		if f.Name == name {
			return f.ID
		}
	}
	t.Fatalf("session has no field named %s", name)
	return ""
}

func TestConsentMustBeAffirmed(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	env := h.createTwoSignerEnvelope(t)
	_, err := h.sendUC.Execute(ctx, SendEnvelopeInput{EnvelopeID: env.ID})
	require.NoError(t, err)
	tok := h.tokenFor(t, env, "alice@example.com")

	err = h.signingUC.Consent(ctx, tok, false, "", "")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeConsentRequired, appErr.Code)

	// A declined consent leaves no trace in the ledger.
	session, err := h.signingUC.Open(ctx, tok, "", "")
	require.NoError(t, err)
	assert.False(t, session.Consented)
}

func TestSaveValuesSupersedesPriorSave(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	env := h.createSingleSignerTextEnvelope(t)
	_, err := h.sendUC.Execute(ctx, SendEnvelopeInput{EnvelopeID: env.ID})
	require.NoError(t, err)
	tok := h.tokenFor(t, env, "alice@example.com")

	session, err := h.signingUC.Open(ctx, tok, "", "")
	require.NoError(t, err)
	fieldA := fieldNamed(t, session, "A")
	fieldB := fieldNamed(t, session, "B")

	// Blank values are dropped on save, including whitespace-only ones.
	session, err = h.signingUC.SaveValues(ctx, tok, map[string]interface{}{
		fieldA: "x",
		fieldB: "   ",
	}, "", "")
	require.NoError(t, err)
	assert.Equal(t, "x", byID(session, fieldA))
	assert.Nil(t, byID(session, fieldB))

	n, err := h.client.SignerFieldValue.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// A later save supersedes everything stored before.
	session, err = h.signingUC.SaveValues(ctx, tok, map[string]interface{}{
		fieldA: "y",
	}, "", "")
	require.NoError(t, err)
	for _, f := range session.Fields {
		switch f.ID {
		case fieldA:
			assert.Equal(t, "y", f.Value)
		case fieldB:
			assert.Nil(t, f.Value)
		}
	}
	n, err = h.client.SignerFieldValue.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// An empty submission is a no-op, not a wipe.
	session, err = h.signingUC.SaveValues(ctx, tok, map[string]interface{}{}, "", "")
	require.NoError(t, err)
	assert.Equal(t, "y", byID(session, fieldA))
}

func byID(s *Session, id string) interface{} {
	for _, f := range s.Fields {
		if f.ID == id {
			return f.Value
		}
	}
	return nil
}

func TestFilledEventCarriesSubmittedValues(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	env := h.createSingleSignerTextEnvelope(t)
	_, err := h.sendUC.Execute(ctx, SendEnvelopeInput{EnvelopeID: env.ID})
	require.NoError(t, err)
	tok := h.tokenFor(t, env, "alice@example.com")

	session, err := h.signingUC.Open(ctx, tok, "", "")
	require.NoError(t, err)
	fieldA := fieldNamed(t, session, "A")

	_, err = h.signingUC.SaveValues(ctx, tok, map[string]interface{}{fieldA: "x"}, "", "")
	require.NoError(t, err)

	events, err := ledger.History(ctx, h.client, env.ID)
	require.NoError(t, err)
	last := events[len(events)-1]
	require.Equal(t, "filled", string(last.Type))
	values, ok := last.Meta["values"].(map[string]interface{})
	require.True(t, ok, "filled event carries the submitted payload")
	assert.Equal(t, "x", values[fieldA])
}

func TestOpenIsLedgeredOnEveryLoad(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	env := h.createTwoSignerEnvelope(t)
	_, err := h.sendUC.Execute(ctx, SendEnvelopeInput{EnvelopeID: env.ID})
	require.NoError(t, err)
	tok := h.tokenFor(t, env, "alice@example.com")

	_, err = h.signingUC.Open(ctx, tok, "10.0.0.1", "agent-one")
	require.NoError(t, err)
	_, err = h.signingUC.Open(ctx, tok, "10.0.0.2", "agent-two")
	require.NoError(t, err)

	events, err := ledger.History(ctx, h.client, env.ID)
	require.NoError(t, err)
	var opened int
	for _, ev := range events {
		if ev.Type == "opened" {
			opened++
		}
	}
	assert.Equal(t, 2, opened)

	// First-open provenance is written once and never overwritten.
	sig, err := h.client.Signer.Query().All(ctx)
	require.NoError(t, err)
	for _, s := range sig {
		if s.Email == "alice@example.com" {
			assert.Equal(t, "10.0.0.1", s.IPFirst)
			assert.Equal(t, "agent-one", s.UaFirst)
		}
	}
}
