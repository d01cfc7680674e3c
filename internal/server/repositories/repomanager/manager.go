// Package repomanager wires repository constructors together behind a single
// interface so services can bind any repository to either a *sql.DB or a
// transaction started by dbx.WithTx.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/ganeshpodishetti/portfolio-api/internal/dbx"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/repositories/education"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/repositories/experiences"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/repositories/messages"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/repositories/projects"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/repositories/skills"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/repositories/sociallinks"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to the provided DBTX and exposes
// a schema migration hook.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Education(db dbx.DBTX) education.Repository
	Experiences(db dbx.DBTX) experiences.Repository
	Projects(db dbx.DBTX) projects.Repository
	Skills(db dbx.DBTX) skills.Repository
	Messages(db dbx.DBTX) messages.Repository
	SocialLinks(db dbx.DBTX) sociallinks.Repository
}
