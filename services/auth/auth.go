package auth

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"solarcare/models"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrOTPNotFound     = errors.New("OTP not found or expired")
	ErrOTPMismatch     = errors.New("OTP does not match")
	ErrTooManyAttempts = errors.New("too many OTP attempts")
	ErrInvalidToken    = errors.New("invalid token")
)

const (
	otpPrefix   = "otp:"
	maxAttempts = 5
)

var phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

type otpRecord struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// Service implements the simulated phone + OTP login. No message is ever
// sent; the code is logged and, outside production, returned to the caller.
type Service struct {
	Redis     *redis.Client
	Secret    []byte
	TokenTTL  time.Duration
	OTPTTL    time.Duration
	ExposeOTP bool
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewService(client *redis.Client, secret string, tokenTTL, otpTTL time.Duration, exposeOTP bool, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Redis:     client,
		Secret:    []byte(secret),
		TokenTTL:  tokenTTL,
		OTPTTL:    otpTTL,
		ExposeOTP: exposeOTP,
		Logger:    logger,
		Now:       time.Now,
	}
}

// NormalizePhone strips spaces, dashes and an optional +91/0 prefix.
func NormalizePhone(raw string) (string, error) {
	p := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(raw))
	p = strings.TrimPrefix(p, "+91")
	if len(p) == 11 && strings.HasPrefix(p, "0") {
		p = p[1:]
	}
	if !phonePattern.MatchString(p) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	return p, nil
}

// RequestOTP creates a 6-digit code for phone and stores it with a TTL.
func (s *Service) RequestOTP(ctx context.Context, phone string) (*models.OTPChallenge, error) {
	p, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}
	code, err := generateOTP()
	if err != nil {
		return nil, err
	}

	requestID := uuid.New().String()
	data, err := json.Marshal(otpRecord{Phone: p, Code: code})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OTP record: %w", err)
	}
	if err := s.Redis.Set(ctx, otpPrefix+requestID, data, s.OTPTTL).Err(); err != nil {
		s.Logger.Error("Failed to cache OTP", zap.Error(err))
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	s.Logger.Sugar().Infof("Simulated OTP %s for phone %s (request %s, expires in %v)", code, p, requestID, s.OTPTTL)

	ch := &models.OTPChallenge{
		RequestID: requestID,
		Phone:     p,
		ExpiresAt: s.Now().Add(s.OTPTTL),
	}
	if s.ExposeOTP {
		ch.DevOTP = code
	}
	return ch, nil
}

// VerifyOTP checks code against the stored OTP and issues a signed token.
// A verified or exhausted OTP is deleted.
func (s *Service) VerifyOTP(ctx context.Context, requestID, code string) (*models.AuthResult, error) {
	key := otpPrefix + requestID
	raw, err := s.Redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrOTPNotFound
		}
		return nil, fmt.Errorf("failed to retrieve OTP: %w", err)
	}
	var rec otpRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("failed to parse OTP record: %w", err)
	}

	if strings.TrimSpace(code) != rec.Code {
		attempts, err := s.Redis.Incr(ctx, key+":attempts").Result()
		if err != nil {
			return nil, fmt.Errorf("failed to count OTP attempts: %w", err)
		}
		s.Redis.Expire(ctx, key+":attempts", s.OTPTTL)
		if attempts >= maxAttempts {
			s.Redis.Del(ctx, key, key+":attempts")
			return nil, ErrTooManyAttempts
		}
		return nil, ErrOTPMismatch
	}

	if err := s.Redis.Del(ctx, key, key+":attempts").Err(); err != nil {
		s.Logger.Error("Failed to delete OTP after verification", zap.Error(err))
	}

	user := models.User{
		ID:        UserIDForPhone(rec.Phone),
		Phone:     rec.Phone,
		CreatedAt: s.Now(),
	}
	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResult{Token: token, User: user}, nil
}

// UserIDForPhone derives a stable user ID so the same phone always maps to
// the same workspace.
func UserIDForPhone(phone string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("solarcare:"+phone)).String()
}

func (s *Service) GenerateToken(u models.User) (string, error) {
	now := s.Now()
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"phone": u.Phone,
		"iat":   now.Unix(),
		"exp":   now.Add(s.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken returns the user ID carried by a valid token.
func (s *Service) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
