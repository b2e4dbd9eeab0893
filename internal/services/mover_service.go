package services

import (
	"Hoard/internal/dto"
	"Hoard/internal/models"
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

type MoverService interface {
	Move(ctx context.Context, id string, request dto.MoveRequestDTO) (*models.Record, error)
	Copy(ctx context.Context, id string, request dto.CopyRequestDTO) (*models.Record, error)
}

type MoverServiceImpl struct {
	recordService RecordService
	treeService   TreeService
	logService    LogService
}

func NewMoverService(
	recordService RecordService,
	treeService TreeService,
	logService LogService,
) MoverService {
	return &MoverServiceImpl{
		recordService: recordService,
		treeService:   treeService,
		logService:    logService,
	}
}

// Move places a record under a new parent, section or location path. A record
// can never end up inside itself or one of its descendants.
func (m *MoverServiceImpl) Move(ctx context.Context, id string, request dto.MoveRequestDTO) (*models.Record, error) {
	if request.ParentID == nil && request.SectionID == nil && request.LocationPath == nil {
		return nil, invalidArgument("nothing to move: parentId, sectionId or locationPath is required")
	}
	if _, err := m.recordService.Get(ctx, id); err != nil {
		return nil, err
	}

	if request.ParentID != nil && *request.ParentID != "" {
		if err := m.checkParent(ctx, id, *request.ParentID); err != nil {
			return nil, err
		}
	}

	record, err := m.recordService.Update(ctx, id, dto.RecordPatchDTO{
		ParentID:     request.ParentID,
		SectionID:    request.SectionID,
		LocationPath: request.LocationPath,
	})
	if err != nil {
		return nil, fmt.Errorf("error moving record %s: %w", id, err)
	}
	m.logService.Log.WithFields(logrus.Fields{
		"id":        record.ID,
		"parentId":  record.Parent(),
		"sectionId": record.SectionID,
	}).Debug("record moved")
	return record, nil
}

func (m *MoverServiceImpl) Copy(ctx context.Context, id string, request dto.CopyRequestDTO) (*models.Record, error) {
	record, err := m.recordService.Copy(ctx, id, request.SectionID)
	if err != nil {
		return nil, fmt.Errorf("error copying record %s: %w", id, err)
	}
	m.logService.Log.WithFields(logrus.Fields{
		"sourceId": id,
		"id":       record.ID,
	}).Debug("record copied")
	return record, nil
}

func (m *MoverServiceImpl) checkParent(ctx context.Context, id, parentID string) error {
	if parentID == id {
		return invalidArgument("record %s cannot be placed inside itself", id)
	}
	if _, err := m.recordService.Get(ctx, parentID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return invalidArgument("target parent %s does not exist", parentID)
		}
		return err
	}
	descendants, err := m.treeService.Descendants(ctx, id)
	if err != nil {
		return err
	}
	if descendants[parentID] {
		return invalidArgument("record %s cannot be placed inside its descendant %s", id, parentID)
	}
	return nil
}
