package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It reads and writes the "jhi_user" table and the "jhi_user_authority"
// join table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, "FindByID", findUserByIDCondition(id))
}

func (r *userRepository) FindByLogin(ctx context.Context, login string) (models.User, error) {
	return r.findOne(ctx, "FindByLogin", findUserByLoginCondition(login))
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "FindByEmail", findUserByEmailCondition(email))
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (models.User, error) {
	return r.findOne(ctx, "FindByPhone", findUserByPhoneCondition(phone))
}

// findOne loads a single user and its authorities.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) findOne(ctx context.Context, op string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", "*userRepository."+op).Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository."+op).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	users := []models.User{user}
	if err = r.loadAuthorities(ctx, users); err != nil {
		return models.User{}, err
	}

	return users[0], nil
}

// FindAllByLoginNot returns one page of users whose login differs from
// login, with authorities loaded.
func (r *userRepository) FindAllByLoginNot(ctx context.Context, pageable models.Pageable, login string) (models.Page[models.User], error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountUsersQuery(r.db.builder, login)
	if err != nil {
		return models.Page[models.User]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*userRepository.FindAllByLoginNot").Msg("error counting users")
		return models.Page[models.User]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildListUsersQuery(r.db.builder, pageable, login)
	if err != nil {
		return models.Page[models.User]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	users, err := r.queryUsers(ctx, "FindAllByLoginNot", query, args)
	if err != nil {
		return models.Page[models.User]{}, err
	}

	if err = r.loadAuthorities(ctx, users); err != nil {
		return models.Page[models.User]{}, err
	}

	return models.Page[models.User]{
		Content:       users,
		Number:        pageable.Page,
		Size:          pageable.Size,
		TotalElements: total,
	}, nil
}

func (r *userRepository) FindNotActivatedCreatedBefore(ctx context.Context, before time.Time) ([]models.User, error) {
	query, args, err := buildNotActivatedUsersQuery(r.db.builder, before)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUsers(ctx, "FindNotActivatedCreatedBefore", query, args)
}

func (r *userRepository) queryUsers(ctx context.Context, op, query string, args []any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository."+op).Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository."+op).Msg("error scanning users")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository."+op).Msg("error iterating users")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// loadAuthorities fills the Authorities field of every user in place with a
// single query.
func (r *userRepository) loadAuthorities(ctx context.Context, users []models.User) error {
	if len(users) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	ids := make([]int64, len(users))
	index := make(map[int64]int, len(users))
	for i := range users {
		ids[i] = users[i].ID
		index[users[i].ID] = i
		users[i].Authorities = []string{}
	}

	query, args, err := buildUserAuthoritiesQuery(r.db.builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.loadAuthorities").Msg("error querying authorities")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			userID int64
			name   string
		)
		if err = rows.Scan(&userID, &name); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if i, ok := index[userID]; ok {
			users[i].Authorities = append(users[i].Authorities, name)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

// Create persists a new user together with its authority links inside one
// transaction and returns it with the database-assigned id.
//
// Error handling:
//   - unique violation on login/email/phone → the matching sentinel error.
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("failed to begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = tx.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		return models.User{}, r.writeError(ctx, "Create", err)
	}

	if err = r.replaceAuthorities(ctx, tx, user.ID, user.Authorities, false); err != nil {
		return models.User{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("failed to commit transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	if user.Authorities == nil {
		user.Authorities = []string{}
	}

	return user, nil
}

// Update rewrites the mutable columns of the user with user.ID and replaces
// its authority set. Returns [ErrNoUserWasFound] when no row has that id.
func (r *userRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Msg("failed to begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildUpdateUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return models.User{}, r.writeError(ctx, "Update", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	if err = r.replaceAuthorities(ctx, tx, user.ID, user.Authorities, true); err != nil {
		return models.User{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Msg("failed to commit transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return r.FindByID(ctx, user.ID)
}

func (r *userRepository) replaceAuthorities(ctx context.Context, tx *sql.Tx, userID int64, authorities []string, clearExisting bool) error {
	log := logger.FromContext(ctx)

	if clearExisting {
		query, args, err := buildDeleteUserAuthoritiesQuery(r.db.builder, userID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*userRepository.replaceAuthorities").Int64("user_id", userID).Msg("error clearing authorities")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if len(authorities) == 0 {
		return nil
	}

	query, args, err := buildInsertUserAuthoritiesQuery(r.db.builder, userID, authorities)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.replaceAuthorities").Int64("user_id", userID).Msg("error linking authorities")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteByLogin removes the user and its authority links.
func (r *userRepository) DeleteByLogin(ctx context.Context, login string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteByLogin").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	linksQuery, linksArgs, err := buildDeleteUserLinksByLoginQuery(r.db.builder, login)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, linksQuery, linksArgs...); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteByLogin").Str("login", login).Msg("error deleting authority links")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err := buildDeleteUserByLoginQuery(r.db.builder, login)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteByLogin").Str("login", login).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteByLogin").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *userRepository) writeError(ctx context.Context, op string, err error) error {
	if sentinel, ok := uniqueViolationError(r.db.errorClassificator, err); ok {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*userRepository."+op).Msg("unique violation")
		return sentinel
	}

	logger.FromContext(ctx).Err(err).Str("func", "*userRepository."+op).Msg("unexpected DB error")
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
