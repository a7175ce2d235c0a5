package postgres

import (
	"context"
	"math"
	"time"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/filter"
	"directorio/internal/domain/hours"
	"directorio/internal/domain/repository"
	"directorio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// ListApproved returns one page of approved businesses matching criteria in Spanish name order.
// One extra row is fetched to learn whether another page exists.
func (repo *businessRepository) ListApproved(ctx context.Context, criteria filter.Criteria, page repository.Page) ([]*entity.Business, bool, error) {
	query := applyCriteria(repo.db.WithContext(ctx).Where("is_approved = ?", true), criteria)

	var businessModels []*model.BusinessModel
	if err := query.
		Order("sort_key ASC").
		Order("id ASC").
		Limit(page.Limit + 1).
		Offset(page.Offset).
		Find(&businessModels).Error; err != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(err, "failed to list approved businesses")
	}

	hasMore := len(businessModels) > page.Limit
	if hasMore {
		businessModels = businessModels[:page.Limit]
	}

	return toBusinessDomains(businessModels), hasMore, nil
}

func applyCriteria(query *gorm.DB, criteria filter.Criteria) *gorm.DB {
	if criteria.Category != nil {
		query = query.Where("category = ?", string(*criteria.Category))
	}
	if criteria.Zone != nil {
		query = query.Where("zone = ?", string(*criteria.Zone))
	}
	if criteria.MinRating != nil {
		query = query.Where("rating IS NOT NULL AND rating >= ?", *criteria.MinRating)
	}
	if criteria.PriceTier != nil {
		query = query.Where("price_range = ?", string(*criteria.PriceTier))
	}
	if criteria.Query != "" {
		pattern := likePattern(criteria.Query)
		search := query.Session(&gorm.Session{NewDB: true}).
			Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern).
			Or(`LOWER(description) LIKE ? ESCAPE '\'`, pattern).
			Or(tagMatchSQL(query.Dialector.Name()), pattern)
		if len(criteria.LabelCategories) > 0 {
			search = search.Or("category IN ?", categoryStrings(criteria.LabelCategories))
		}
		query = query.Where(search)
	}

	return query
}

// tagMatchSQL matches the pattern against each tag on its own.
func tagMatchSQL(dialect string) string {
	if dialect == "sqlite" {
		return `EXISTS (SELECT 1 FROM json_each(businesses.tags) WHERE LOWER(json_each.value) LIKE ? ESCAPE '\')`
	}

	return `EXISTS (SELECT 1 FROM jsonb_array_elements_text(businesses.tags) AS t(tag) WHERE LOWER(t.tag) LIKE ? ESCAPE '\')`
}

// FindApprovedByID retrieves an approved business by its ID.
func (repo *businessRepository) FindApprovedByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	return repo.find(ctx, repo.db.WithContext(ctx).Where("id = ? AND is_approved = ?", id, true))
}

// FindByID retrieves a business regardless of its approval state.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	return repo.find(ctx, repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *businessRepository) find(_ context.Context, query *gorm.DB) (*entity.Business, error) {
	var businessM model.BusinessModel
	if err := query.First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find business")
	}

	return toBusinessDomain(&businessM), nil
}

// ListApprovedWithin returns approved businesses inside bound, closest to its centre first.
// Distance is ranked on an equirectangular projection, which is exact enough at town scale.
func (repo *businessRepository) ListApprovedWithin(ctx context.Context, bound orb.Bound, limit int) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel

	center := bound.Center()
	lonScale := math.Cos(center.Lat() * math.Pi / 180)

	if err := repo.db.WithContext(ctx).
		Where("is_approved = ?", true).
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "(latitude - ?) * (latitude - ?) + (longitude - ?) * (longitude - ?) * ?, id",
			Vars:               []any{center.Lat(), center.Lat(), center.Lon(), center.Lon(), lonScale * lonScale},
			WithoutParentheses: true,
		}}).
		Limit(limit).
		Find(&businessModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list businesses within bound")
	}

	return toBusinessDomains(businessModels), nil
}

// Create persists a new business.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// ListPending returns unapproved businesses, oldest first.
func (repo *businessRepository) ListPending(ctx context.Context, page repository.Page) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&businessModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list pending businesses")
	}

	return toBusinessDomains(businessModels), nil
}

// SetApproved marks a business as publicly listed.
func (repo *businessRepository) SetApproved(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_approved": true, "updated_at": time.Now()})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to approve business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// Delete removes a business and its submission rows.
func (repo *businessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("business_id = ?", id).Delete(&model.SubmissionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete submissions")
	}

	result := db.Where("id = ?", id).Delete(&model.BusinessModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// --- Mapper Functions ---

func categoryStrings(categories []entity.Category) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}

	return out
}

func toBusinessDomains(businessModels []*model.BusinessModel) []*entity.Business {
	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses
}

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	var priceTier *entity.PriceTier
	if data.PriceRange != nil {
		p := entity.PriceTier(*data.PriceRange)
		priceTier = &p
	}

	tags := []string(data.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &entity.Business{
		ID:          data.ID,
		Name:        data.Name,
		Category:    entity.Category(data.Category),
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Address:     data.Address,
		City:        data.City,
		State:       data.State,
		ZipCode:     data.ZipCode,
		Zone:        entity.Zone(data.Zone),
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Phone:       data.Phone,
		Email:       data.Email,
		Website:     data.Website,
		Rating:      data.Rating,
		ReviewCount: data.ReviewCount,
		PriceTier:   priceTier,
		Hours:       hours.Schedule(data.Hours.Data()),
		Tags:        tags,
		IsApproved:  data.IsApproved,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	var priceRange *string
	if data.PriceTier != nil {
		p := string(*data.PriceTier)
		priceRange = &p
	}

	schedule := map[string]string(data.Hours)
	if schedule == nil {
		schedule = map[string]string{}
	}
	tags := data.Tags
	if tags == nil {
		tags = []string{}
	}

	return &model.BusinessModel{
		ID:          data.ID,
		Name:        data.Name,
		SortKey:     filter.NameSortKey(data.Name),
		Category:    string(data.Category),
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Address:     data.Address,
		City:        data.City,
		State:       data.State,
		ZipCode:     data.ZipCode,
		Zone:        string(data.Zone),
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Phone:       data.Phone,
		Email:       data.Email,
		Website:     data.Website,
		Rating:      data.Rating,
		ReviewCount: data.ReviewCount,
		PriceRange:  priceRange,
		Hours:       datatypes.NewJSONType(schedule),
		Tags:        datatypes.NewJSONSlice(tags),
		IsApproved:  data.IsApproved,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
