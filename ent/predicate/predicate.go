// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Envelope is the predicate function for envelope builders.
type Envelope func(*sql.Selector)

// EnvelopeField is the predicate function for envelopefield builders.
type EnvelopeField func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// FinalArtifact is the predicate function for finalartifact builders.
type FinalArtifact func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// ProjectInvestor is the predicate function for projectinvestor builders.
type ProjectInvestor func(*sql.Selector)

// Signer is the predicate function for signer builders.
type Signer func(*sql.Selector)

// SignerFieldValue is the predicate function for signerfieldvalue builders.
type SignerFieldValue func(*sql.Selector)
