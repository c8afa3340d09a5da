package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"moodlens/internal/content"
	"moodlens/internal/emotion"
)

const (
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

// checkInput es el payload JSON que acepta la herramienta: las mismas
// cuatro fuentes opcionales que el endpoint de check-in, más reportes
// de pipelines por modalidad para el modo ensemble.
type checkInput struct {
	Answers map[string]string  `json:"answers"`
	Journal map[string]string  `json:"journal"`
	Face    map[string]float64 `json:"face"`
	Voice   map[string]float64 `json:"voice"`
	Reports []reportInput      `json:"reports"`
}

// reportInput es la salida de un pipeline de modalidad ya en vocabulario
// canónico, con su auto-reporte de calidad.
type reportInput struct {
	Modality      string             `json:"modality"`
	Scores        map[string]float64 `json:"scores"`
	Confidence    float64            `json:"confidence"`
	QualitySignal bool               `json:"quality_signal"`
}

func main() {
	inputPath := flag.String("input", "-", "archivo JSON con las respuestas, '-' para stdin")
	asJSON := flag.Bool("json", false, "imprime el resultado completo como JSON")
	withActions := flag.Bool("actions", false, "incluye el plan de acción sugerido")
	asEnsemble := flag.Bool("ensemble", false, "fusiona los reportes por modalidad en modo ensemble")
	flag.Parse()

	var reader io.Reader = os.Stdin
	if *inputPath != "-" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		reader = f
	}

	var input checkInput
	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		log.Fatalf("decoding input: %v", err)
	}

	if *asEnsemble {
		runEnsemble(input, *asJSON, *withActions)
		return
	}

	detector := emotion.NewDefaultDetector()
	result := detector.Detect(emotion.DetectionInput{
		Answers: input.Answers,
		Journal: input.Journal,
		Face:    input.Face,
		Voice:   input.Voice,
	})

	if *asJSON {
		printJSON(result)
		return
	}

	fmt.Printf("%s%s %s%s (confidence %.2f, quality %s)\n",
		colorGreen, result.Glyph, result.Label, colorReset, result.Confidence, result.Quality)
	fmt.Println(result.Description)
	if len(result.Indicators) > 0 {
		fmt.Println("\nIndicators:")
		for _, ind := range result.Indicators {
			fmt.Printf("  - %s\n", ind)
		}
	}
	if len(result.Sources) > 0 {
		fmt.Println("\nSources:")
		for _, src := range result.Sources {
			fmt.Printf("  - %s\n", src)
		}
	}

	if *withActions {
		printActions(result.Category)
	}
}

// runEnsemble fusiona los reportes de pipelines independientes con el
// motor ajustado por calidad, en lugar de correr el detector completo.
func runEnsemble(input checkInput, asJSON, withActions bool) {
	reports := modalityReports(input.Reports)
	if len(reports) == 0 {
		log.Fatal("ensemble mode needs at least one report with scores")
	}

	engine := emotion.NewEnsembleEngine(nil)
	result := engine.Fuse(reports)

	if asJSON {
		printJSON(result)
		return
	}

	meta := emotion.Metadata(result.Dominant)
	fmt.Printf("%s%s %s%s (confidence %.2f, quality %s)\n",
		colorGreen, meta.Glyph, meta.Label, colorReset, result.Confidence, result.Quality)
	fmt.Println(meta.Description)
	if len(result.Sources) > 0 {
		fmt.Println("\nSources:")
		for _, src := range result.Sources {
			fmt.Printf("  - %s\n", src)
		}
	}

	if withActions {
		printActions(result.Dominant)
	}
}

// modalityReports traduce los reportes del JSON al contrato del motor.
// Claves que no pertenecen al set canónico se descartan en silencio,
// igual que en la frontera de modalidades.
func modalityReports(inputs []reportInput) []emotion.ModalityReport {
	var reports []emotion.ModalityReport
	for _, in := range inputs {
		scores := make(emotion.ScoreMap)
		for key, score := range in.Scores {
			category, ok := emotion.ParseCategory(key)
			if !ok || score < 0 {
				continue
			}
			scores[category] = score
		}
		if len(scores) == 0 {
			continue
		}
		reports = append(reports, emotion.ModalityReport{
			Modality:      emotion.Modality(in.Modality),
			Signal:        emotion.SignalOf(scores),
			Confidence:    in.Confidence,
			QualitySignal: in.QualitySignal,
		})
	}
	return reports
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

func printActions(cat emotion.Category) {
	recommender := content.NewRecommender()
	plan := recommender.PlanFor(cat)
	fmt.Printf("\n%sImmediate actions:%s\n", colorCyan, colorReset)
	for _, a := range plan.Immediate {
		fmt.Printf("  - %s (%s, %s)\n", a.Name, a.Type, a.Duration)
	}
	fmt.Printf("%sShort-term actions:%s\n", colorCyan, colorReset)
	for _, a := range plan.ShortTerm {
		fmt.Printf("  - %s (%s, %s)\n", a.Name, a.Type, a.Duration)
	}
}
