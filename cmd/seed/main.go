// 初期データ投入ツール。
// テーブル作成と管理者・サンプル従業員の登録を行う（再実行可）。
//
//	go run ./cmd/seed
package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/oklog/ulid/v2"

	"KINTAI-backend/internal/platform/auth"
	"KINTAI-backend/internal/platform/db"
)

var ddl = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		employee_id VARCHAR(255) NOT NULL,
		full_name   VARCHAR(255) NOT NULL,
		email       VARCHAR(255) NOT NULL,
		department  VARCHAR(255) NOT NULL DEFAULT 'General',
		role        VARCHAR(32)  NOT NULL DEFAULT 'EMPLOYEE',
		is_active   TINYINT(1)   NOT NULL DEFAULT 1,
		created_at  DATETIME(6)  NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		PRIMARY KEY (employee_id),
		UNIQUE KEY uq_employees_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS user_credentials (
		employee_id   VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at    DATETIME(6)  NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		PRIMARY KEY (employee_id)
	)`,
	`CREATE TABLE IF NOT EXISTS attendances (
		attendance_id CHAR(26)     NOT NULL,
		employee_id   VARCHAR(255) NOT NULL,
		attended_on   DATE         NOT NULL,
		check_in      DATETIME(6)  NULL,
		check_out     DATETIME(6)  NULL,
		status        VARCHAR(16)  NOT NULL DEFAULT 'ABSENT',
		PRIMARY KEY (attendance_id),
		UNIQUE KEY uq_attendances_employee_date (employee_id, attended_on)
	)`,
	`CREATE TABLE IF NOT EXISTS leave_requests (
		leave_id    CHAR(26)     NOT NULL,
		employee_id VARCHAR(255) NOT NULL,
		start_date  DATE         NOT NULL,
		end_date    DATE         NOT NULL,
		reason      TEXT         NULL,
		status      VARCHAR(16)  NOT NULL DEFAULT 'PENDING',
		created_at  DATETIME(6)  NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		PRIMARY KEY (leave_id)
	)`,
}

type seedUser struct {
	email      string
	name       string
	department string
	role       auth.Role
}

var seedUsers = []seedUser{
	{email: "admin@example.com", name: "Admin User", department: "Management", role: auth.RoleAdmin},
	{email: "emp@example.com", name: "John Doe", department: "Engineering", role: auth.RoleEmployee},
	{email: "jane@example.com", name: "Jane Smith", department: "HR", role: auth.RoleEmployee},
}

const seedPassword = "password"

func main() {
	_ = godotenv.Load()

	cfg, err := db.LoadConfig("config/config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Connect(cfg.DB)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx := context.Background()

	for _, q := range ddl {
		if _, err := conn.ExecContext(ctx, q); err != nil {
			log.Fatalf("DDL failed: %v", err)
		}
	}
	log.Println("[INFO] tables ready")

	for _, u := range seedUsers {
		created, err := createUser(ctx, conn, u)
		if err != nil {
			log.Fatalf("seed user %s: %v", u.email, err)
		}
		if created {
			log.Printf("[INFO] created %s (%s)", u.email, u.role)
		} else {
			log.Printf("[INFO] %s already exists, skipped", u.email)
		}
	}

	if err := seedAttendance(ctx, conn); err != nil {
		log.Fatalf("seed attendance: %v", err)
	}
	if err := seedLeave(ctx, conn); err != nil {
		log.Fatalf("seed leave: %v", err)
	}

	log.Println("[INFO] done")
}

func createUser(ctx context.Context, conn *sql.DB, u seedUser) (bool, error) {
	var one int
	err := conn.QueryRowContext(ctx,
		`SELECT 1 FROM user_credentials WHERE employee_id = ? LIMIT 1`, u.email,
	).Scan(&one)
	if err == nil {
		return false, nil
	}
	if err != sql.ErrNoRows {
		return false, err
	}

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return false, err
	}

	err = db.RunInTx(ctx, conn, nil, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO employees (employee_id, full_name, email, department, role, is_active) VALUES (?, ?, ?, ?, ?, 1)`,
			u.email, u.name, u.email, u.department, string(u.role),
		); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO user_credentials (employee_id, password_hash) VALUES (?, ?)`,
			u.email, hash,
		)
		return err
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// 直近3営業日ぶんの出退勤履歴（従業員のみ）
func seedAttendance(ctx context.Context, conn *sql.DB) error {
	now := time.Now().UTC()
	for _, email := range []string{"emp@example.com", "jane@example.com"} {
		for d := 1; d <= 3; d++ {
			day := now.AddDate(0, 0, -d)
			on := day.Format("2006-01-02")

			var one int
			err := conn.QueryRowContext(ctx,
				`SELECT 1 FROM attendances WHERE employee_id = ? AND attended_on = ? LIMIT 1`, email, on,
			).Scan(&one)
			if err == nil {
				continue
			}
			if err != sql.ErrNoRows {
				return err
			}

			checkIn := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, time.UTC)
			checkOut := checkIn.Add(8 * time.Hour)
			if _, err := conn.ExecContext(ctx,
				`INSERT INTO attendances (attendance_id, employee_id, attended_on, check_in, check_out, status) VALUES (?, ?, ?, ?, ?, 'PRESENT')`,
				newULID(), email, on, checkIn, checkOut,
			); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedLeave(ctx context.Context, conn *sql.DB) error {
	const email = "emp@example.com"

	var one int
	err := conn.QueryRowContext(ctx,
		`SELECT 1 FROM leave_requests WHERE employee_id = ? LIMIT 1`, email,
	).Scan(&one)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	start := time.Now().UTC().AddDate(0, 0, 7)
	end := start.AddDate(0, 0, 2)
	_, err = conn.ExecContext(ctx,
		`INSERT INTO leave_requests (leave_id, employee_id, start_date, end_date, reason, status, created_at) VALUES (?, ?, ?, ?, ?, 'PENDING', ?)`,
		newULID(), email, start.Format("2006-01-02"), end.Format("2006-01-02"), "Family vacation", time.Now().UTC(),
	)
	return err
}

func newULID() string {
	t := time.Now().UTC()
	return ulid.MustNew(ulid.Timestamp(t), ulid.Monotonic(rand.Reader, 0)).String()
}
