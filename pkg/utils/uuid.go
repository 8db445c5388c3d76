package utils

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateSessionID cria o identificador de uma tentativa de extração,
// derivado do timestamp para que os diretórios de diagnóstico fiquem
// ordenados cronologicamente e nunca colidam entre tentativas.
func GenerateSessionID() string {
	suffix, err := GenerateID()
	if err != nil {
		suffix = fmt.Sprintf("%06d", time.Now().Nanosecond()%1000000)
	}

	return fmt.Sprintf("%s-%s", time.Now().Format("20060102-150405"), suffix)
}
