package repos

import (
    "context"
    "errors"

    "gorm.io/gorm"

    "github.com/campuslink-org/campuslink-backend/internal/logger"
    "github.com/campuslink-org/campuslink-backend/internal/types"
)

type CampusRepo interface {
    // CREATE
    Create(ctx context.Context, tx *gorm.DB, campus *types.Campus) (*types.Campus, error)

    // READ
    GetByID(ctx context.Context, tx *gorm.DB, campusID uint) (*types.Campus, error)
    GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Campus, error)

    // UPDATE
    Update(ctx context.Context, tx *gorm.DB, campusID uint, updates types.CampusUpdate) (*types.Campus, error)
}

type campusRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewCampusRepo(db *gorm.DB, baseLog *logger.Logger) CampusRepo {
    repoLog := baseLog.With("repo", "CampusRepo")
    return &campusRepo{db: db, log: repoLog}
}

// ----------------------------------------------------------------
// CREATE
// ----------------------------------------------------------------

func (cr *campusRepo) Create(ctx context.Context, tx *gorm.DB, campus *types.Campus) (*types.Campus, error) {
    cr.log.Info("Starting Create Campus now...")

    transaction := tx
    if transaction == nil {
        transaction = cr.db
        cr.log.Debug("Transaction is nil, using cr.db instead")
    }

    cr.log.Info("Creating campus now in DB...")
    if err := transaction.WithContext(ctx).Create(campus).Error; err != nil {
        cr.log.Error("Failed to create campus", "error", err)
        return nil, err
    }
    cr.log.Info("Successfully created campus", "campusID", campus.ID)
    cr.log.Debug("Campus created details", "campus", campus)
    return campus, nil
}

// ----------------------------------------------------------------
// READ
// ----------------------------------------------------------------

func (cr *campusRepo) GetByID(ctx context.Context, tx *gorm.DB, campusID uint) (*types.Campus, error) {
    cr.log.Info("Starting GetByID for Campus now...", "campusID", campusID)

    transaction := tx
    if transaction == nil {
        transaction = cr.db
        cr.log.Debug("Transaction is nil, using cr.db")
    }

    var campus types.Campus
    cr.log.Info("Fetching campus by ID now...")
    if err := transaction.WithContext(ctx).
        Where("id = ?", campusID).
        First(&campus).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            cr.log.Debug("No campus with given ID", "campusID", campusID)
            return nil, nil
        }
        cr.log.Error("Failed to fetch campus by ID", "error", err)
        return nil, err
    }
    cr.log.Info("Successfully fetched campus by ID", "campusID", campusID)
    cr.log.Debug("Campus fetched", "campus", campus)
    return &campus, nil
}

func (cr *campusRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Campus, error) {
    cr.log.Info("Starting GetAll for Campuses now...")

    transaction := tx
    if transaction == nil {
        transaction = cr.db
        cr.log.Debug("Transaction is nil, using cr.db")
    }

    var results []*types.Campus
    cr.log.Info("Fetching all campuses ordered by name now...")
    if err := transaction.WithContext(ctx).
        Order("name ASC").
        Find(&results).Error; err != nil {
        cr.log.Error("Failed to fetch all campuses", "error", err)
        return nil, err
    }
    cr.log.Info("Successfully fetched all campuses", "count", len(results))
    cr.log.Debug("Campuses fetched", "campuses", results)
    return results, nil
}

// ----------------------------------------------------------------
// UPDATE
// ----------------------------------------------------------------

func (cr *campusRepo) Update(ctx context.Context, tx *gorm.DB, campusID uint, updates types.CampusUpdate) (*types.Campus, error) {
    cr.log.Info("Starting Update for Campus now...", "campusID", campusID)

    transaction := tx
    if transaction == nil {
        transaction = cr.db
        cr.log.Debug("Transaction is nil, using cr.db")
    }

    // 1) Row must exist; absence is not an error
    campus, err := cr.GetByID(ctx, transaction, campusID)
    if err != nil {
        return nil, err
    }
    if campus == nil {
        cr.log.Debug("No campus to update", "campusID", campusID)
        return nil, nil
    }

    // 2) Only explicitly supplied fields make it into the statement
    cr.log.Info("Building update payload from supplied fields now...")
    fields := map[string]interface{}{}
    if updates.Name != nil {
        fields["name"] = *updates.Name
    }
    if updates.Address != nil {
        fields["address"] = *updates.Address
    }
    if len(fields) == 0 {
        cr.log.Debug("No fields supplied, returning campus unchanged", "campusID", campusID)
        return campus, nil
    }
    cr.log.Debug("Update payload built", "fields", fields)

    // 3) Apply and return the fresh row
    cr.log.Info("Applying campus update now...")
    if err := transaction.WithContext(ctx).
        Model(&types.Campus{}).
        Where("id = ?", campusID).
        Updates(fields).Error; err != nil {
        cr.log.Error("Failed to update campus", "error", err, "campusID", campusID)
        return nil, err
    }
    cr.log.Info("Successfully updated campus", "campusID", campusID)
    return cr.GetByID(ctx, transaction, campusID)
}
