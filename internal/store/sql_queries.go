package store

import (
	"database/sql"
	"time"

	"github.com/MKhiriev/go-uaa/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	userTable          = "jhi_user"
	authorityTable     = "jhi_authority"
	userAuthorityTable = "jhi_user_authority"
	solutionTable      = "solution"
)

var userColumns = []string{
	"id", "login", "password_hash", "first_name", "last_name", "email", "phone",
	"image_url", "activated", "lang_key", "activation_key", "reset_key", "reset_date",
	"created_by", "created_date", "last_modified_by", "last_modified_date",
}

var solutionColumns = []string{
	"id", "uuid", "name", "version", "summary", "author_login", "author_name",
	"company", "co_authors", "tag1", "tag2", "tag3", "subject1", "subject2", "subject3",
	"active", "solution_type", "toolkit_type", "picture_url", "created_date",
	"modified_date", "last_download", "view_count", "download_count",
	"comment_count", "rating_count", "rating_average",
}

// Sortable properties of each listing, keyed by their JSON name.
var (
	userSortColumns = map[string]string{
		"id":               "id",
		"login":            "login",
		"firstName":        "first_name",
		"lastName":         "last_name",
		"email":            "email",
		"activated":        "activated",
		"langKey":          "lang_key",
		"createdBy":        "created_by",
		"createdDate":      "created_date",
		"lastModifiedBy":   "last_modified_by",
		"lastModifiedDate": "last_modified_date",
	}
	solutionSortColumns = map[string]string{
		"id":            "id",
		"uuid":          "uuid",
		"name":          "name",
		"version":       "version",
		"authorLogin":   "author_login",
		"createdDate":   "created_date",
		"modifiedDate":  "modified_date",
		"viewCount":     "view_count",
		"downloadCount": "download_count",
		"ratingAverage": "rating_average",
	}
)

// orderBy renders the requested sort, dropping unknown properties, and
// always ends with id so that paging is stable.
func orderBy(sorts []models.Sort, columns map[string]string) []string {
	clauses := make([]string, 0, len(sorts)+1)
	hasID := false
	for _, s := range sorts {
		column, ok := columns[s.Property]
		if !ok {
			continue
		}
		if column == "id" {
			hasID = true
		}
		if s.Ascending {
			clauses = append(clauses, column+" ASC")
		} else {
			clauses = append(clauses, column+" DESC")
		}
	}
	if !hasID {
		clauses = append(clauses, "id ASC")
	}
	return clauses
}

// users

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return b.Select(userColumns...).
		From(userTable).
		Where(where).
		Limit(1).
		ToSql()
}

func findUserByIDCondition(id int64) sq.Sqlizer {
	return sq.Eq{"id": id}
}

func findUserByLoginCondition(login string) sq.Sqlizer {
	return sq.Eq{"login": login}
}

func findUserByEmailCondition(email string) sq.Sqlizer {
	return sq.Expr("LOWER(email) = LOWER(?)", email)
}

func findUserByPhoneCondition(phone string) sq.Sqlizer {
	return sq.Eq{"phone": phone}
}

func buildCountUsersQuery(b sq.StatementBuilderType, excludeLogin string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(userTable).
		Where(sq.NotEq{"login": excludeLogin}).
		ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType, pageable models.Pageable, excludeLogin string) (string, []any, error) {
	return b.Select(userColumns...).
		From(userTable).
		Where(sq.NotEq{"login": excludeLogin}).
		OrderBy(orderBy(pageable.Sort, userSortColumns)...).
		Limit(uint64(pageable.Size)).
		Offset(pageable.Offset()).
		ToSql()
}

func buildNotActivatedUsersQuery(b sq.StatementBuilderType, before time.Time) (string, []any, error) {
	return b.Select(userColumns...).
		From(userTable).
		Where(sq.And{
			sq.Eq{"activated": false},
			sq.Lt{"created_date": before},
		}).
		OrderBy("id ASC").
		ToSql()
}

func buildUserAuthoritiesQuery(b sq.StatementBuilderType, userIDs []int64) (string, []any, error) {
	return b.Select("user_id", "authority_name").
		From(userAuthorityTable).
		Where(sq.Eq{"user_id": userIDs}).
		OrderBy("authority_name ASC").
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(userTable).
		Columns(userColumns[1:]...).
		Values(
			user.Login,
			user.PasswordHash,
			user.FirstName,
			user.LastName,
			nullString(user.Email),
			nullString(user.Phone),
			user.ImageURL,
			user.Activated,
			user.LangKey,
			nullString(user.ActivationKey),
			nullString(user.ResetKey),
			nullTime(user.ResetDate),
			user.CreatedBy,
			user.CreatedDate,
			user.LastModifiedBy,
			nullTime(user.LastModifiedDate),
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update(userTable).
		SetMap(map[string]any{
			"login":              user.Login,
			"first_name":         user.FirstName,
			"last_name":          user.LastName,
			"email":              nullString(user.Email),
			"phone":              nullString(user.Phone),
			"image_url":          user.ImageURL,
			"activated":          user.Activated,
			"lang_key":           user.LangKey,
			"last_modified_by":   user.LastModifiedBy,
			"last_modified_date": nullTime(user.LastModifiedDate),
		}).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
}

func buildInsertUserAuthoritiesQuery(b sq.StatementBuilderType, userID int64, authorities []string) (string, []any, error) {
	insert := b.Insert(userAuthorityTable).Columns("user_id", "authority_name")
	for _, a := range authorities {
		insert = insert.Values(userID, a)
	}
	return insert.ToSql()
}

func buildDeleteUserAuthoritiesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(userAuthorityTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteUserLinksByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Delete(userAuthorityTable).
		Where(sq.Expr("user_id IN (SELECT id FROM "+userTable+" WHERE login = ?)", login)).
		ToSql()
}

func buildDeleteUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Delete(userTable).
		Where(sq.Eq{"login": login}).
		ToSql()
}

// authorities

func buildListAuthoritiesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("name").
		From(authorityTable).
		OrderBy("name ASC").
		ToSql()
}

func buildCountAuthorityQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(authorityTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildInsertAuthorityQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Insert(authorityTable).
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
}

func buildDeleteAuthorityLinksQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Delete(userAuthorityTable).
		Where(sq.Eq{"authority_name": name}).
		ToSql()
}

func buildDeleteAuthorityQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Delete(authorityTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

// solutions

func solutionValues(s models.Solution) []any {
	return []any{
		s.UUID, s.Name, s.Version, s.Summary, s.AuthorLogin, s.AuthorName,
		s.Company, s.CoAuthors, s.Tag1, s.Tag2, s.Tag3, s.Subject1, s.Subject2, s.Subject3,
		s.Active, s.SolutionType, s.ToolkitType, s.PictureURL, s.CreatedDate,
		s.ModifiedDate, nullTime(s.LastDownload), s.ViewCount, s.DownloadCount,
		s.CommentCount, s.RatingCount, s.RatingAverage,
	}
}

func buildInsertSolutionQuery(b sq.StatementBuilderType, s models.Solution) (string, []any, error) {
	return b.Insert(solutionTable).
		Columns(solutionColumns[1:]...).
		Values(solutionValues(s)...).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateSolutionQuery(b sq.StatementBuilderType, s models.Solution) (string, []any, error) {
	values := solutionValues(s)
	set := make(map[string]any, len(values))
	for i, column := range solutionColumns[1:] {
		// creation time is immutable
		if column == "created_date" {
			continue
		}
		set[column] = values[i]
	}

	var id int64
	if s.ID != nil {
		id = *s.ID
	}

	return b.Update(solutionTable).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdateCompositeSolutionQuery(b sq.StatementBuilderType, u models.CompositeSolutionUpdate, modified time.Time) (string, []any, error) {
	return b.Update(solutionTable).
		Set("name", u.Name).
		Set("version", u.Version).
		Set("summary", u.Summary).
		Set("modified_date", modified).
		Where(sq.Eq{"uuid": u.UUID}).
		ToSql()
}

func buildFindSolutionQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return b.Select(solutionColumns...).
		From(solutionTable).
		Where(where).
		Limit(1).
		ToSql()
}

func applySolutionFilter(sb sq.SelectBuilder, filter models.SolutionFilter) sq.SelectBuilder {
	if filter.AuthorLogin != "" {
		sb = sb.Where(sq.Eq{"author_login": filter.AuthorLogin})
	}
	return sb
}

func buildCountSolutionsQuery(b sq.StatementBuilderType, filter models.SolutionFilter) (string, []any, error) {
	return applySolutionFilter(b.Select("COUNT(*)").From(solutionTable), filter).
		ToSql()
}

func buildListSolutionsQuery(b sq.StatementBuilderType, filter models.SolutionFilter, pageable models.Pageable) (string, []any, error) {
	return applySolutionFilter(b.Select(solutionColumns...).From(solutionTable), filter).
		OrderBy(orderBy(pageable.Sort, solutionSortColumns)...).
		Limit(uint64(pageable.Size)).
		Offset(pageable.Offset()).
		ToSql()
}

func buildDeleteSolutionQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(solutionTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// scanning

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		u                                          models.User
		firstName, lastName, email, phone          sql.NullString
		imageURL, langKey, activationKey, resetKey sql.NullString
		lastModifiedBy                             sql.NullString
		resetDate, lastModifiedDate                sql.NullTime
	)

	err := row.Scan(
		&u.ID, &u.Login, &u.PasswordHash, &firstName, &lastName, &email, &phone,
		&imageURL, &u.Activated, &langKey, &activationKey, &resetKey, &resetDate,
		&u.CreatedBy, &u.CreatedDate, &lastModifiedBy, &lastModifiedDate,
	)
	if err != nil {
		return models.User{}, err
	}

	u.FirstName = firstName.String
	u.LastName = lastName.String
	u.Email = email.String
	u.Phone = phone.String
	u.ImageURL = imageURL.String
	u.LangKey = langKey.String
	u.ActivationKey = activationKey.String
	u.ResetKey = resetKey.String
	u.LastModifiedBy = lastModifiedBy.String
	u.ResetDate = timePtr(resetDate)
	u.LastModifiedDate = timePtr(lastModifiedDate)

	return u, nil
}

func scanSolution(row rowScanner) (models.Solution, error) {
	var (
		s                                              models.Solution
		id                                             int64
		name, version, summary, authorLogin            sql.NullString
		authorName, company, coAuthors                 sql.NullString
		tag1, tag2, tag3, subject1, subject2, subject3 sql.NullString
		solutionType, toolkitType, pictureURL          sql.NullString
		lastDownload                                   sql.NullTime
	)

	err := row.Scan(
		&id, &s.UUID, &name, &version, &summary, &authorLogin, &authorName,
		&company, &coAuthors, &tag1, &tag2, &tag3, &subject1, &subject2, &subject3,
		&s.Active, &solutionType, &toolkitType, &pictureURL, &s.CreatedDate,
		&s.ModifiedDate, &lastDownload, &s.ViewCount, &s.DownloadCount,
		&s.CommentCount, &s.RatingCount, &s.RatingAverage,
	)
	if err != nil {
		return models.Solution{}, err
	}

	s.ID = &id
	s.Name = name.String
	s.Version = version.String
	s.Summary = summary.String
	s.AuthorLogin = authorLogin.String
	s.AuthorName = authorName.String
	s.Company = company.String
	s.CoAuthors = coAuthors.String
	s.Tag1, s.Tag2, s.Tag3 = tag1.String, tag2.String, tag3.String
	s.Subject1, s.Subject2, s.Subject3 = subject1.String, subject2.String, subject3.String
	s.SolutionType = solutionType.String
	s.ToolkitType = toolkitType.String
	s.PictureURL = pictureURL.String
	s.LastDownload = timePtr(lastDownload)

	return s, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
