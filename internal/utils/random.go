package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/cadastro-rh/funcionarios/backend/internal/domain"
)

var commonFirstNames = []string{
	"Ana", "Bruno", "Carla", "Diego", "Elisa", "Felipe", "Gabriela", "Heitor",
	"Isabela", "João", "Larissa", "Marcos", "Natália", "Otávio", "Paula",
	"Rafael", "Sofia", "Thiago", "Vitória", "William",
}
var commonSurnames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Lima", "Pereira", "Ferreira",
	"Costa", "Almeida", "Carvalho", "Gomes", "Ribeiro", "Martins", "Rocha",
	"Barbosa",
}
var roles = []string{
	"Desenvolvedor", "Analista", "Gerente", "Coordenador", "Estagiário",
	"Designer", "Suporte",
}

func GenerateRandomName() string {
	name := commonFirstNames[rand.Intn(len(commonFirstNames))]
	surnameCount := rand.Intn(2) + 1

	for i := 0; i < surnameCount; i++ {
		name += " " + commonSurnames[rand.Intn(len(commonSurnames))]
	}
	return name
}

// GenerateRandomCPF gera 11 dígitos com os dois dígitos verificadores
// calculados pelo algoritmo oficial.
func GenerateRandomCPF() string {
	digits := make([]int, 11)
	for i := 0; i < 9; i++ {
		digits[i] = rand.Intn(10)
	}
	digits[9] = cpfCheckDigit(digits[:9])
	digits[10] = cpfCheckDigit(digits[:10])

	var sb strings.Builder
	for _, d := range digits {
		fmt.Fprintf(&sb, "%d", d)
	}
	return sb.String()
}

func cpfCheckDigit(digits []int) int {
	weight := len(digits) + 1
	sum := 0
	for _, d := range digits {
		sum += d * weight
		weight--
	}

	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func GenerateRandomPhone() string {
	return fmt.Sprintf("(%02d) 9%04d-%04d", rand.Intn(89)+11, rand.Intn(10000), rand.Intn(10000))
}

func GenerateRandomRole() string {
	return roles[rand.Intn(len(roles))]
}

func GenerateRandomBirthDate() string {
	return fmt.Sprintf("%04d-%02d-%02d", rand.Intn(45)+1960, rand.Intn(12)+1, rand.Intn(28)+1)
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "â", "a", "ã", "a", "é", "e", "ê", "e", "í", "i",
	"ó", "o", "ô", "o", "õ", "o", "ú", "u", "ç", "c",
)

func GenerateEmailFromName(name string) string {
	local := accentReplacer.Replace(strings.ToLower(name))
	local = strings.ReplaceAll(local, " ", ".")
	return fmt.Sprintf("%s%d@example.com", local, rand.Intn(1000))
}

func GenerateRandomEmployee() *domain.Employee {
	name := GenerateRandomName()

	return &domain.Employee{
		Name:      name,
		CPF:       GenerateRandomCPF(),
		Email:     GenerateEmailFromName(name),
		Phone:     GenerateRandomPhone(),
		Role:      GenerateRandomRole(),
		BirthDate: GenerateRandomBirthDate(),
	}
}
