package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	mix "github.com/vinicius847-o/CPDgit/internal/calc/mix"
	strength "github.com/vinicius847-o/CPDgit/internal/calc/strength"
)

type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type UpdateResponse struct {
	OK     bool     `json:"ok"`
	Result []Update `json:"result"`
}

func main() {
	token := os.Getenv("TOKEN_BOT")
	if token == "" {
		log.Fatal("TOKEN_BOT missing")
	}

	offset := 0
	for {
		updates, err := getUpdates(token, offset)
		if err != nil {
			log.Println("getUpdates error:", err)
			time.Sleep(2 * time.Second)
			continue
		}
		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message != nil {
				handleMessage(token, u.Message)
			}
		}
		time.Sleep(1 * time.Second)
	}
}

func handleMessage(token string, msg *Message) {
	fields := strings.Fields(msg.Text)
	if len(fields) == 0 {
		return
	}
	switch fields[0] {
	case "/mix":
		sendMessage(token, msg.Chat.ID, handleMix(fields[1:]))
	case "/fck":
		sendMessage(token, msg.Chat.ID, handleFck(fields[1:]))
	case "/start", "/help":
		sendMessage(token, msg.Chat.ID,
			"Commands:\n/mix <fck_mpa> [slump_cm]\n/fck <dimension_mm> <shape> <load_kn> [load_kn...]")
	}
}

func handleMix(args []string) string {
	if len(args) < 1 {
		return "Usage: /mix <fck_mpa> [slump_cm]"
	}
	fck, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "Bad fck value"
	}
	slump := 10.0
	if len(args) > 1 {
		slump, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			return "Bad slump value"
		}
	}
	res, err := mix.Calculate(mix.Input{FckMPa: fck, SlumpCm: slump})
	if err != nil {
		return "Calculation error: " + err.Error()
	}
	out := fmt.Sprintf(
		"Dosage per m3 (fck %.1f MPa, slump %.1f cm):\na/c %.2f\ncement %.1f kg\nwater %.1f L\nsand %.1f kg\ngravel %.1f kg\nadmixture %.2f kg",
		fck, slump, res.WaterCementRatio, res.CementKgM3, res.WaterLM3, res.SandKgM3, res.GravelKgM3, res.AdmixtureKgM3)
	for _, adv := range res.Advisories {
		out += "\n! " + adv
	}
	return out
}

func handleFck(args []string) string {
	if len(args) < 3 {
		return "Usage: /fck <dimension_mm> <shape> <load_kn> [load_kn...]"
	}
	dim, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "Bad dimension value"
	}
	shape := args[1]
	var loads []float64
	for _, a := range args[2:] {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return "Bad load value: " + a
		}
		loads = append(loads, v)
	}
	res, err := strength.Calculate(strength.Input{
		LoadsKN:     loads,
		DimensionMM: dim,
		Shape:       shape,
		AgeDays:     28,
		TargetMPa:   30.0,
	})
	if err != nil {
		return "Calculation error: " + err.Error()
	}
	return fmt.Sprintf(
		"Series of %d specimens:\nfcm %.2f MPa\ns %.2f MPa\nfck,est %.2f MPa\nverdict: %s (target 30.0 MPa)",
		len(loads), res.MeanMPa, res.StdDevMPa, res.CharacteristicMPa, res.Verdict)
}

func getUpdates(token string, offset int) ([]Update, error) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/getUpdates?timeout=20&offset=%d", token, offset)
	res, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	var out UpdateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

func sendMessage(token string, chatID int64, text string) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token)
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	b, _ := json.Marshal(payload)
	_, _ = http.Post(url, "application/json", strings.NewReader(string(b)))
}
