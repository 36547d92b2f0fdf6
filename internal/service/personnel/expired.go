package personnel

import (
	"context"

	"github.com/heartmarshall/studio-backend/internal/notify"
	"github.com/heartmarshall/studio-backend/internal/service/maintenance"
)

// CheckExpired runs the expired-tenure sweep on demand. When at least one
// member changed, a batch notification lists them.
func (s *Service) CheckExpired(ctx context.Context) (maintenance.CheckResult, error) {
	res, err := s.expiry.CheckExpired(ctx, false)
	if err != nil {
		return maintenance.CheckResult{}, err
	}
	if res.Count() > 0 {
		p := notify.Batch(notify.KindPersonnel, notify.ActionCheckExpired, res.Count(), "")
		p.Names = res.Names
		s.events.Publish(notify.NewEvent(ctx, notify.OpUpdate, p))
	}
	return res, nil
}
