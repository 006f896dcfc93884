// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"sealgate.io/sealgate/ent/document"
	"sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/envelopefield"
	"sealgate.io/sealgate/ent/event"
	"sealgate.io/sealgate/ent/finalartifact"
	"sealgate.io/sealgate/ent/project"
	"sealgate.io/sealgate/ent/projectinvestor"
	"sealgate.io/sealgate/ent/schema"
	"sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/ent/signerfieldvalue"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentMixin := schema.Document{}.Mixin()
	documentMixinFields0 := documentMixin[0].Fields()
	_ = documentMixinFields0
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentMixinFields0[0].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentMixinFields0[1].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[1].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescStorageKey is the schema descriptor for storage_key field.
	documentDescStorageKey := documentFields[2].Descriptor()
	// document.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	document.StorageKeyValidator = documentDescStorageKey.Validators[0].(func(string) error)
	// documentDescVersion is the schema descriptor for version field.
	documentDescVersion := documentFields[4].Descriptor()
	// document.DefaultVersion holds the default value on creation for the version field.
	document.DefaultVersion = documentDescVersion.Default.(int)
	envelopeMixin := schema.Envelope{}.Mixin()
	envelopeMixinFields0 := envelopeMixin[0].Fields()
	_ = envelopeMixinFields0
	envelopeFields := schema.Envelope{}.Fields()
	_ = envelopeFields
	// envelopeDescCreatedAt is the schema descriptor for created_at field.
	envelopeDescCreatedAt := envelopeMixinFields0[0].Descriptor()
	// envelope.DefaultCreatedAt holds the default value on creation for the created_at field.
	envelope.DefaultCreatedAt = envelopeDescCreatedAt.Default.(func() time.Time)
	// envelopeDescUpdatedAt is the schema descriptor for updated_at field.
	envelopeDescUpdatedAt := envelopeMixinFields0[1].Descriptor()
	// envelope.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	envelope.DefaultUpdatedAt = envelopeDescUpdatedAt.Default.(func() time.Time)
	// envelope.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	envelope.UpdateDefaultUpdatedAt = envelopeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// envelopeDescSubject is the schema descriptor for subject field.
	envelopeDescSubject := envelopeFields[1].Descriptor()
	// envelope.DefaultSubject holds the default value on creation for the subject field.
	envelope.DefaultSubject = envelopeDescSubject.Default.(string)
	// envelopeDescMessage is the schema descriptor for message field.
	envelopeDescMessage := envelopeFields[2].Descriptor()
	// envelope.DefaultMessage holds the default value on creation for the message field.
	envelope.DefaultMessage = envelopeDescMessage.Default.(string)
	envelopefieldFields := schema.EnvelopeField{}.Fields()
	_ = envelopefieldFields
	// envelopefieldDescPage is the schema descriptor for page field.
	envelopefieldDescPage := envelopefieldFields[1].Descriptor()
	// envelopefield.DefaultPage holds the default value on creation for the page field.
	envelopefield.DefaultPage = envelopefieldDescPage.Default.(int)
	// envelopefieldDescRequired is the schema descriptor for required field.
	envelopefieldDescRequired := envelopefieldFields[7].Descriptor()
	// envelopefield.DefaultRequired holds the default value on creation for the required field.
	envelopefield.DefaultRequired = envelopefieldDescRequired.Default.(bool)
	// envelopefieldDescRole is the schema descriptor for role field.
	envelopefieldDescRole := envelopefieldFields[8].Descriptor()
	// envelopefield.DefaultRole holds the default value on creation for the role field.
	envelopefield.DefaultRole = envelopefieldDescRole.Default.(string)
	eventMixin := schema.Event{}.Mixin()
	eventMixinFields0 := eventMixin[0].Fields()
	_ = eventMixinFields0
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventMixinFields0[0].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescActor is the schema descriptor for actor field.
	eventDescActor := eventFields[0].Descriptor()
	// event.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	event.ActorValidator = eventDescActor.Validators[0].(func(string) error)
	// eventDescPrevHash is the schema descriptor for prev_hash field.
	eventDescPrevHash := eventFields[5].Descriptor()
	// event.PrevHashValidator is a validator for the "prev_hash" field. It is called by the builders before save.
	event.PrevHashValidator = eventDescPrevHash.Validators[0].(func(string) error)
	// eventDescHash is the schema descriptor for hash field.
	eventDescHash := eventFields[6].Descriptor()
	// event.HashValidator is a validator for the "hash" field. It is called by the builders before save.
	event.HashValidator = eventDescHash.Validators[0].(func(string) error)
	finalartifactMixin := schema.FinalArtifact{}.Mixin()
	finalartifactMixinFields0 := finalartifactMixin[0].Fields()
	_ = finalartifactMixinFields0
	finalartifactFields := schema.FinalArtifact{}.Fields()
	_ = finalartifactFields
	// finalartifactDescCreatedAt is the schema descriptor for created_at field.
	finalartifactDescCreatedAt := finalartifactMixinFields0[0].Descriptor()
	// finalartifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	finalartifact.DefaultCreatedAt = finalartifactDescCreatedAt.Default.(func() time.Time)
	// finalartifactDescStorageKeyPdf is the schema descriptor for storage_key_pdf field.
	finalartifactDescStorageKeyPdf := finalartifactFields[0].Descriptor()
	// finalartifact.StorageKeyPdfValidator is a validator for the "storage_key_pdf" field. It is called by the builders before save.
	finalartifact.StorageKeyPdfValidator = finalartifactDescStorageKeyPdf.Validators[0].(func(string) error)
	// finalartifactDescStorageKeyAudit is the schema descriptor for storage_key_audit field.
	finalartifactDescStorageKeyAudit := finalartifactFields[1].Descriptor()
	// finalartifact.StorageKeyAuditValidator is a validator for the "storage_key_audit" field. It is called by the builders before save.
	finalartifact.StorageKeyAuditValidator = finalartifactDescStorageKeyAudit.Validators[0].(func(string) error)
	// finalartifactDescSha256Final is the schema descriptor for sha256_final field.
	finalartifactDescSha256Final := finalartifactFields[2].Descriptor()
	// finalartifact.Sha256FinalValidator is a validator for the "sha256_final" field. It is called by the builders before save.
	finalartifact.Sha256FinalValidator = finalartifactDescSha256Final.Validators[0].(func(string) error)
	projectMixin := schema.Project{}.Mixin()
	projectMixinFields0 := projectMixin[0].Fields()
	_ = projectMixinFields0
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectMixinFields0[0].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectMixinFields0[1].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescStatus is the schema descriptor for status field.
	projectDescStatus := projectFields[2].Descriptor()
	// project.DefaultStatus holds the default value on creation for the status field.
	project.DefaultStatus = projectDescStatus.Default.(string)
	// projectDescAccessToken is the schema descriptor for access_token field.
	projectDescAccessToken := projectFields[3].Descriptor()
	// project.AccessTokenValidator is a validator for the "access_token" field. It is called by the builders before save.
	project.AccessTokenValidator = projectDescAccessToken.Validators[0].(func(string) error)
	projectinvestorMixin := schema.ProjectInvestor{}.Mixin()
	projectinvestorMixinFields0 := projectinvestorMixin[0].Fields()
	_ = projectinvestorMixinFields0
	projectinvestorFields := schema.ProjectInvestor{}.Fields()
	_ = projectinvestorFields
	// projectinvestorDescCreatedAt is the schema descriptor for created_at field.
	projectinvestorDescCreatedAt := projectinvestorMixinFields0[0].Descriptor()
	// projectinvestor.DefaultCreatedAt holds the default value on creation for the created_at field.
	projectinvestor.DefaultCreatedAt = projectinvestorDescCreatedAt.Default.(func() time.Time)
	// projectinvestorDescUpdatedAt is the schema descriptor for updated_at field.
	projectinvestorDescUpdatedAt := projectinvestorMixinFields0[1].Descriptor()
	// projectinvestor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	projectinvestor.DefaultUpdatedAt = projectinvestorDescUpdatedAt.Default.(func() time.Time)
	// projectinvestor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	projectinvestor.UpdateDefaultUpdatedAt = projectinvestorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectinvestorDescName is the schema descriptor for name field.
	projectinvestorDescName := projectinvestorFields[1].Descriptor()
	// projectinvestor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	projectinvestor.NameValidator = projectinvestorDescName.Validators[0].(func(string) error)
	// projectinvestorDescEmail is the schema descriptor for email field.
	projectinvestorDescEmail := projectinvestorFields[2].Descriptor()
	// projectinvestor.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	projectinvestor.EmailValidator = projectinvestorDescEmail.Validators[0].(func(string) error)
	// projectinvestorDescRole is the schema descriptor for role field.
	projectinvestorDescRole := projectinvestorFields[3].Descriptor()
	// projectinvestor.DefaultRole holds the default value on creation for the role field.
	projectinvestor.DefaultRole = projectinvestorDescRole.Default.(string)
	// projectinvestorDescRoutingOrder is the schema descriptor for routing_order field.
	projectinvestorDescRoutingOrder := projectinvestorFields[4].Descriptor()
	// projectinvestor.DefaultRoutingOrder holds the default value on creation for the routing_order field.
	projectinvestor.DefaultRoutingOrder = projectinvestorDescRoutingOrder.Default.(int)
	// projectinvestorDescUnitsInvested is the schema descriptor for units_invested field.
	projectinvestorDescUnitsInvested := projectinvestorFields[5].Descriptor()
	// projectinvestor.DefaultUnitsInvested holds the default value on creation for the units_invested field.
	projectinvestor.DefaultUnitsInvested = projectinvestorDescUnitsInvested.Default.(float64)
	signerMixin := schema.Signer{}.Mixin()
	signerMixinFields0 := signerMixin[0].Fields()
	_ = signerMixinFields0
	signerFields := schema.Signer{}.Fields()
	_ = signerFields
	// signerDescCreatedAt is the schema descriptor for created_at field.
	signerDescCreatedAt := signerMixinFields0[0].Descriptor()
	// signer.DefaultCreatedAt holds the default value on creation for the created_at field.
	signer.DefaultCreatedAt = signerDescCreatedAt.Default.(func() time.Time)
	// signerDescUpdatedAt is the schema descriptor for updated_at field.
	signerDescUpdatedAt := signerMixinFields0[1].Descriptor()
	// signer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	signer.DefaultUpdatedAt = signerDescUpdatedAt.Default.(func() time.Time)
	// signer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	signer.UpdateDefaultUpdatedAt = signerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// signerDescName is the schema descriptor for name field.
	signerDescName := signerFields[1].Descriptor()
	// signer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	signer.NameValidator = signerDescName.Validators[0].(func(string) error)
	// signerDescEmail is the schema descriptor for email field.
	signerDescEmail := signerFields[2].Descriptor()
	// signer.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	signer.EmailValidator = signerDescEmail.Validators[0].(func(string) error)
	// signerDescRole is the schema descriptor for role field.
	signerDescRole := signerFields[3].Descriptor()
	// signer.DefaultRole holds the default value on creation for the role field.
	signer.DefaultRole = signerDescRole.Default.(string)
	// signerDescRoutingOrder is the schema descriptor for routing_order field.
	signerDescRoutingOrder := signerFields[4].Descriptor()
	// signer.DefaultRoutingOrder holds the default value on creation for the routing_order field.
	signer.DefaultRoutingOrder = signerDescRoutingOrder.Default.(int)
	signerfieldvalueMixin := schema.SignerFieldValue{}.Mixin()
	signerfieldvalueMixinFields0 := signerfieldvalueMixin[0].Fields()
	_ = signerfieldvalueMixinFields0
	signerfieldvalueFields := schema.SignerFieldValue{}.Fields()
	_ = signerfieldvalueFields
	// signerfieldvalueDescCreatedAt is the schema descriptor for created_at field.
	signerfieldvalueDescCreatedAt := signerfieldvalueMixinFields0[0].Descriptor()
	// signerfieldvalue.DefaultCreatedAt holds the default value on creation for the created_at field.
	signerfieldvalue.DefaultCreatedAt = signerfieldvalueDescCreatedAt.Default.(func() time.Time)
}
