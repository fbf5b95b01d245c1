package quizgen

import "fmt"

var questionTemplates = []string{
	"Según el documento, ¿cuál es",
	"¿Qué se menciona sobre",
	"De acuerdo al texto, ¿cómo se define",
	"¿Cuál de las siguientes afirmaciones es correcta según el documento?",
	"El texto establece que",
	"¿Qué característica principal se destaca sobre",
}

// termAnswerFormat is the only correct-answer template that names the key term.
const termAnswerFormat = "Se relaciona directamente con %s"

var genericCorrectAnswers = []string{
	"Es un concepto fundamental mencionado en el documento",
	"Tiene características específicas descritas en el texto",
	"Se define claramente en el contenido analizado",
	"Es parte integral del tema principal",
}

var wrongAnswerTemplates = []string{
	"No se menciona en el documento",
	"Es contrario a lo establecido en el texto",
	"No tiene relación con el tema principal",
	"Es una interpretación incorrecta del contenido",
}

// wrongAnswerCount is the number of distractors per question.
const wrongAnswerCount = 3

// correctAnswer picks one of the five correct-answer templates. With no
// key term only the four generic ones are eligible.
func correctAnswer(rnd Rand, term string) string {
	if term == "" {
		return genericCorrectAnswers[rnd.IntN(len(genericCorrectAnswers))]
	}
	i := rnd.IntN(len(genericCorrectAnswers) + 1)
	if i == 0 {
		return fmt.Sprintf(termAnswerFormat, term)
	}
	return genericCorrectAnswers[i-1]
}

// wrongAnswers always returns the first three distractors in list order.
func wrongAnswers() []string {
	out := make([]string, wrongAnswerCount)
	copy(out, wrongAnswerTemplates[:wrongAnswerCount])
	return out
}
