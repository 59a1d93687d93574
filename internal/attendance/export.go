package attendance

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const exportTimeLayout = "2006-01-02 15:04:05"

// ExportCSV: 管理者向けの勤怠一覧CSV。
// Excelでそのまま開けるよう cp932（Windowsの「ANSI」相当）で出力する
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	enc := japanese.ShiftJIS.NewEncoder()
	w := csv.NewWriter(transform.NewWriter(&b, enc))

	if err := w.Write([]string{"社員ID", "氏名", "部署", "日付", "出勤", "退勤", "状態"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write([]string{
			r.EmployeeID,
			r.FullName,
			r.Department,
			r.AttendedOn,
			formatStamp(r.CheckIn),
			formatStamp(r.CheckOut),
			r.Status,
		}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func formatStamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(exportTimeLayout)
}
