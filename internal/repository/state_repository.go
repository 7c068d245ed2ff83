package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"airline-reservation/internal/catalog"
	"airline-reservation/internal/model"
	apperrors "airline-reservation/pkg/app_errors"
	"airline-reservation/pkg/logger"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

// StateRepository 把整份訂位狀態存取到單一 JSON 檔。
// 寫入走 temp file + rename，中途當掉也不會留下半套的狀態檔。
// 狀態檔是跨執行唯一的共享資源，同一個 load-mutate-persist 週期
// 用 advisory file lock 保護，避免兩個 process 互相蓋掉對方的寫入。
type StateRepository struct {
	path string
	lock *flock.Flock
}

func NewStateRepository(path string) *StateRepository {
	return &StateRepository{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Lock 取得狀態檔的獨佔鎖，涵蓋整個 load→sweep→execute→persist 週期
func (r *StateRepository) Lock() error {
	if err := r.lock.Lock(); err != nil {
		return fmt.Errorf("%w: %s: %v", apperrors.ErrStateLock, r.lock.Path(), err)
	}
	return nil
}

func (r *StateRepository) Unlock() {
	if err := r.lock.Unlock(); err != nil {
		logger.WithComponent("repository").Warn("failed to release state lock",
			zap.String("path", r.lock.Path()), zap.Error(err))
	}
}

// Load 載入完整狀態。檔案不存在代表首次執行，回傳種子目錄而不是
// 錯誤；讀不到或解析失敗視為毀損，整次執行中止、不做任何變更。
func (r *StateRepository) Load() (*model.State, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			st := model.NewState()
			catalog.Seed(st)
			logger.WithComponent("repository").Info("state file missing, seeded default catalog",
				zap.String("path", r.path))
			return st, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", apperrors.ErrStateCorrupt, r.path, err)
	}

	st := model.NewState()
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", apperrors.ErrStateCorrupt, r.path, err)
	}
	normalize(st)

	if err := st.Validate(); err != nil {
		return nil, err
	}
	return st, nil
}

// Save 原子性落盤：寫到同目錄的暫存檔、fsync，再 rename 蓋過目標。
// rename 失敗時原本的狀態檔不受影響，記憶體內的變更就丟了。
func (r *StateRepository) Save(st *model.State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", apperrors.ErrStateWrite, err)
	}

	tmp := r.path + ".tmp"
	if err := writeAndSync(tmp, data); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: write %s: %v", apperrors.ErrStateWrite, tmp, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: replace %s: %v", apperrors.ErrStateWrite, r.path, err)
	}
	return nil
}

func writeAndSync(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// normalize 補齊舊檔可能缺的空集合，Validate 與後續操作就不用判 nil
func normalize(st *model.State) {
	if st.Flights == nil {
		st.Flights = make(map[string]*model.Flight)
	}
	if st.SeatMaps == nil {
		st.SeatMaps = make(map[string]*model.SeatMap)
	}
	if st.Holds == nil {
		st.Holds = make(map[string]*model.Hold)
	}
	if st.Purchases == nil {
		st.Purchases = make(map[string]*model.Purchase)
	}
}
