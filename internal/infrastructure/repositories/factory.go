package repositories

import (
	"context"
	"database/sql"

	"alumninet/internal/core/ports"
	"alumninet/internal/infrastructure/repositories/memory"
	"alumninet/internal/infrastructure/repositories/postgres"
	"alumninet/pkg/config"

	"go.uber.org/zap"
)

// RepositoryFactory creates repositories with fallback support
type RepositoryFactory struct {
	usePostgres bool
	db          *sql.DB
	logger      *zap.SugaredLogger
}

// NewRepositoryFactory creates a new repository factory. When Postgres is
// enabled but unreachable, the factory falls back to memory repositories.
func NewRepositoryFactory(cfg *config.Config, logger *zap.SugaredLogger) (*RepositoryFactory, error) {
	factory := &RepositoryFactory{
		usePostgres: cfg.Postgres.Enabled,
		logger:      logger,
	}

	if cfg.Postgres.Enabled {
		db, err := postgres.NewPostgresClient(
			cfg.Postgres.DSN,
			cfg.Postgres.MaxOpenConns,
			cfg.Postgres.MaxIdleConns,
			cfg.Postgres.ConnTimeout,
			logger,
		)
		if err != nil {
			logger.Warnw("failed to connect to Postgres, falling back to memory repositories",
				"error", err,
			)
			factory.usePostgres = false
		} else {
			factory.db = db
			logger.Info("using Postgres repositories")
		}
	}

	if !factory.usePostgres {
		logger.Info("using memory repositories")
	}

	return factory, nil
}

func (f *RepositoryFactory) CreateUserRepository() ports.UserRepository {
	if f.usePostgres && f.db != nil {
		return postgres.NewPostgresUserRepository(f.db)
	}
	return memory.NewMemoryUserRepository()
}

func (f *RepositoryFactory) CreatePostRepository() ports.PostRepository {
	if f.usePostgres && f.db != nil {
		return postgres.NewPostgresPostRepository(f.db)
	}
	return memory.NewMemoryPostRepository()
}

func (f *RepositoryFactory) CreateCommentRepository() ports.CommentRepository {
	if f.usePostgres && f.db != nil {
		return postgres.NewPostgresCommentRepository(f.db)
	}
	return memory.NewMemoryCommentRepository()
}

func (f *RepositoryFactory) CreateLikeRepository() ports.LikeRepository {
	if f.usePostgres && f.db != nil {
		return postgres.NewPostgresLikeRepository(f.db)
	}
	return memory.NewMemoryLikeRepository()
}

func (f *RepositoryFactory) CreateConnectionRepository() ports.ConnectionRepository {
	if f.usePostgres && f.db != nil {
		return postgres.NewPostgresConnectionRepository(f.db)
	}
	return memory.NewMemoryConnectionRepository()
}

func (f *RepositoryFactory) CreateMessageRepository() ports.MessageRepository {
	if f.usePostgres && f.db != nil {
		return postgres.NewPostgresMessageRepository(f.db)
	}
	return memory.NewMemoryMessageRepository()
}

func (f *RepositoryFactory) CreateEventRepository() ports.EventRepository {
	if f.usePostgres && f.db != nil {
		return postgres.NewPostgresEventRepository(f.db)
	}
	return memory.NewMemoryEventRepository()
}

func (f *RepositoryFactory) CreateFeedbackRepository() ports.FeedbackRepository {
	if f.usePostgres && f.db != nil {
		return postgres.NewPostgresFeedbackRepository(f.db)
	}
	return memory.NewMemoryFeedbackRepository()
}

func (f *RepositoryFactory) CreateJobRepository() ports.JobRepository {
	if f.usePostgres && f.db != nil {
		return postgres.NewPostgresJobRepository(f.db)
	}
	return memory.NewMemoryJobRepository()
}

func (f *RepositoryFactory) CreateDonationRepository() ports.DonationRepository {
	if f.usePostgres && f.db != nil {
		return postgres.NewPostgresDonationRepository(f.db)
	}
	return memory.NewMemoryDonationRepository()
}

func (f *RepositoryFactory) CreateStoryRepository() ports.StoryRepository {
	if f.usePostgres && f.db != nil {
		return postgres.NewPostgresStoryRepository(f.db)
	}
	return memory.NewMemoryStoryRepository()
}

// Close closes the Postgres pool if used
func (f *RepositoryFactory) Close() error {
	if f.db != nil {
		return postgres.ClosePostgresClient(f.db)
	}
	return nil
}

// HealthCheck checks Postgres connection health
func (f *RepositoryFactory) HealthCheck(ctx context.Context) error {
	if f.usePostgres && f.db != nil {
		return f.db.PingContext(ctx)
	}
	return nil
}
