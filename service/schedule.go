package service

import (
	"context"
	"time"

	"github.com/BerniceZTT/mentorship_analytics/repository"
	"github.com/BerniceZTT/mentorship_analytics/utils"
)

// ScheduleDailyTaskAt 每天指定时间执行任务，ctx 结束后停止
func ScheduleDailyTaskAt(ctx context.Context, hour, min, sec int, task func(context.Context)) {
	go func() {
		for {
			timer := time.NewTimer(time.Until(nextRun(time.Now(), hour, min, sec)))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
				task(ctx)
			}
		}
	}()
}

// nextRun 计算下一次执行时间
func nextRun(now time.Time, hour, min, sec int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, sec, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// PurgeOperationLogs 删除超过保留天数的操作日志
func PurgeOperationLogs(ctx context.Context, repo repository.AnalyticsRepository, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	utils.Logger.Info().
		Int("retentionDays", retentionDays).
		Time("cutoff", cutoff).
		Msg("开始清理过期操作日志")

	deleted, err := repo.DeleteOperationLogsBefore(ctx, cutoff)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"retentionDays": retentionDays}, "清理操作日志失败")
		return 0, err
	}

	utils.Logger.Info().Int64("deleted", deleted).Msg("过期操作日志清理完成")
	return deleted, nil
}
