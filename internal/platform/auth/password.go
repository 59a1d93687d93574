package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt はソルト込みなので同じ平文でも毎回異なるダイジェストになる。
func HashPassword(plain string) (string, error) {
	return HashPasswordCost(plain, bcrypt.DefaultCost)
}

func HashPasswordCost(plain string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword: 比較は bcrypt 内部で定数時間。
// ダイジェストが壊れていてもエラーにせず false を返す。
func VerifyPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
