package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenTTL = 30 * time.Minute

// 自己完結型の署名付きトークン（サーバ側には保存しない）。
// 発行後の失効手段はなく、期限切れか資格情報の消失でのみ無効になる。
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

func (t *TokenService) Issue(subject string) (string, error) {
	return t.IssueWithTTL(subject, t.ttl)
}

func (t *TokenService) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": now.Add(ttl).Unix(),
	})
	return token.SignedString(t.secret)
}

// Verify: 署名と期限を検証して sub を返す。
// 改ざん・期限切れ・形式不正のどれであっても呼び出し側には一様に ok=false。
func (t *TokenService) Verify(tokenStr string) (string, bool) {
	token, err := jwt.Parse(tokenStr, func(tk *jwt.Token) (any, error) {
		// alg 固定（none攻撃とか回避）
		if tk.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || token == nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", false
	}
	return sub, true
}
