package service

import (
	"fmt"
	"time"

	"airline-reservation/config"
	"airline-reservation/internal/ledger"
	"airline-reservation/internal/model"
	"airline-reservation/internal/repository"
	apperrors "airline-reservation/pkg/app_errors"
	"airline-reservation/pkg/logger"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Service 把每個對外操作包進同一個週期：
// 取鎖 → 載入狀態 → 回收過期保留 → 執行操作 → 落盤 → 放鎖。
// 沒有常駐 process，跨次執行的正確性全靠這個順序與狀態檔的
// 原子替換；過期的保留也是在這裡被回收的，不靠任何計時器。
type Service struct {
	repo     *repository.StateRepository
	cfg      *config.Config
	validate *validator.Validate
	now      func() time.Time
	log      *zap.Logger
}

type Option func(*Service)

// WithNow 覆寫時鐘，測試用來控制過期判斷
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(repo *repository.StateRepository, cfg *config.Config, opts ...Option) *Service {
	svc := &Service{
		repo:     repo,
		cfg:      cfg,
		validate: validator.New(),
		now:      time.Now,
		log:      logger.WithComponent("service"),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// DefaultHoldTTL 設定檔裡的預設保留時長
func (s *Service) DefaultHoldTTL() time.Duration {
	return s.cfg.DefaultHoldTTL
}

// DefaultSeatRows 設定檔裡新航班的預設排數
func (s *Service) DefaultSeatRows() int {
	return s.cfg.SeatRows
}

// run 單次執行的完整週期。op 回傳是否改動了狀態；
// sweep 有回收到東西時連唯讀操作也要落盤，不然過期
// 只發生在記憶體裡，下次載入那些保留又會復活。
// 操作失敗不影響 sweep 結果的持久化。
func (s *Service) run(op string, fn func(led *ledger.Ledger, st *model.State, now time.Time) (bool, error)) error {
	if err := s.repo.Lock(); err != nil {
		return err
	}
	defer s.repo.Unlock()

	st, err := s.repo.Load()
	if err != nil {
		return err
	}

	now := s.now().UTC()
	led := ledger.New(st)

	swept := led.SweepExpired(now)
	if swept > 0 {
		s.log.Info("reclaimed expired holds", zap.String("op", op), zap.Int("count", swept))
	}

	mutated, opErr := fn(led, st, now)

	if swept > 0 || (opErr == nil && mutated) {
		if saveErr := s.repo.Save(st); saveErr != nil {
			s.log.Error("failed to persist state", zap.String("op", op), zap.Error(saveErr))
			return saveErr
		}
	}
	return opErr
}

func (s *Service) validateRequest(req interface{}) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidRequest, err)
	}
	return nil
}
