package randomstringgenerator

import (
	"math/rand"
	"time"
	"verimail/internal/core/domain/identity"
	"verimail/internal/core/domain/user"
)

const (
	activationCodeChars  = "123456789"
	activationCodeLength = 6
	sessionTokenLength   = 32
)

type Generator struct {
	sessionTokenChars []rune
}

func NewGenerator() *Generator {
	rand.Seed(time.Now().UnixNano())
	return &Generator{
		sessionTokenChars: []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"),
	}
}

func (g *Generator) GenerateActivationCode() identity.ActivationCode {
	chars := []rune(activationCodeChars)
	b := make([]rune, activationCodeLength)
	for i := range b {
		b[i] = chars[rand.Intn(len(chars))]
	}
	return identity.ActivationCode(b)
}

func (g *Generator) GenerateSessionToken() user.SessionToken {
	b := make([]rune, sessionTokenLength)
	for i := range b {
		b[i] = g.sessionTokenChars[rand.Intn(len(g.sessionTokenChars))]
	}
	return user.SessionToken(b)
}
