package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id 参数，参考 RFC 9106 推荐的第二档配置
const (
	argonMemory      uint32 = 64 * 1024
	argonIterations  uint32 = 3
	argonParallelism uint8  = 4
	argonSaltLen            = 16
	argonKeyLen      uint32 = 32
)

// HashPassword 生成 PHC 风格的 Argon2id 哈希
// 格式: argon2id$v=19$m=65536,t=3,p=4$<salt_b64>$<hash_b64>
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("密码不能为空")
	}
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	h := argon2.IDKey([]byte(password), salt, argonIterations, argonMemory, argonParallelism, argonKeyLen)
	enc := base64.RawStdEncoding
	return fmt.Sprintf(
		"argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonIterations,
		argonParallelism,
		enc.EncodeToString(salt),
		enc.EncodeToString(h),
	), nil
}

// VerifyPassword 校验明文密码与存储的哈希是否匹配
func VerifyPassword(password, encoded string) bool {
	if password == "" || encoded == "" {
		return false
	}
	memory, iterations, parallelism, salt, want, err := parsePHC(encoded)
	if err != nil {
		return false
	}
	got := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}

func parsePHC(s string) (uint32, uint32, uint8, []byte, []byte, error) {
	// argon2id$v=19$m=65536,t=3,p=4$<salt>$<hash>
	parts := strings.Split(s, "$")
	if len(parts) != 5 {
		return 0, 0, 0, nil, nil, errors.New("invalid password hash format")
	}
	if parts[0] != "argon2id" {
		return 0, 0, 0, nil, nil, errors.New("unsupported password hash algorithm")
	}
	ver, err := strconv.Atoi(strings.TrimPrefix(parts[1], "v="))
	if err != nil || ver != argon2.Version {
		return 0, 0, 0, nil, nil, errors.New("unsupported argon2 version")
	}

	var memory, iterations uint64
	var parallelism uint64
	for _, kv := range strings.Split(parts[2], ",") {
		pair := strings.SplitN(kv, "=", 2)
		if len(pair) != 2 {
			return 0, 0, 0, nil, nil, errors.New("invalid argon2 parameters")
		}
		switch pair[0] {
		case "m":
			memory, err = strconv.ParseUint(pair[1], 10, 32)
		case "t":
			iterations, err = strconv.ParseUint(pair[1], 10, 32)
		case "p":
			parallelism, err = strconv.ParseUint(pair[1], 10, 8)
		default:
			err = errors.New("unknown argon2 parameter")
		}
		if err != nil {
			return 0, 0, 0, nil, nil, errors.New("invalid argon2 parameters")
		}
	}

	enc := base64.RawStdEncoding
	salt, err := enc.DecodeString(parts[3])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.New("invalid argon2 salt")
	}
	hash, err := enc.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.New("invalid argon2 hash")
	}
	if len(hash) < 16 {
		return 0, 0, 0, nil, nil, errors.New("invalid argon2 hash length")
	}
	return uint32(memory), uint32(iterations), uint8(parallelism), salt, hash, nil
}
