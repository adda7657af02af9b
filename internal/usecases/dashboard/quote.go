package dashboard

import (
	"hash/fnv"
	"time"

	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
)

var quotes = []domain.Quote{
	{Text: "Cuidar da saúde de alguém é o trabalho mais nobre que existe.", Author: "Anónimo"},
	{Text: "A saúde é a maior riqueza.", Author: "Virgílio"},
	{Text: "O sucesso é a soma de pequenos esforços repetidos dia após dia.", Author: "Robert Collier"},
	{Text: "Quem atende bem, vende sempre.", Author: "Provérbio comercial"},
	{Text: "A qualidade nunca é um acidente; é sempre o resultado de um esforço inteligente.", Author: "John Ruskin"},
	{Text: "Prevenir é melhor do que remediar.", Author: "Provérbio popular"},
	{Text: "A disciplina é a ponte entre metas e realizações.", Author: "Jim Rohn"},
	{Text: "Um cliente satisfeito é a melhor estratégia de negócio.", Author: "Michael LeBoeuf"},
}

// QuoteOfTheDay escolhe a frase pelo hash da data de now; é estável durante o dia inteiro
func QuoteOfTheDay(now time.Time) domain.Quote {
	hasher := fnv.New32a()
	_, _ = hasher.Write([]byte(now.Format(time.DateOnly)))
	return quotes[int(hasher.Sum32()%uint32(len(quotes)))]
}
