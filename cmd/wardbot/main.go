package main

import (
	plan "Dripline/internal/calc/plan"
	"Dripline/internal/calc/tbw"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
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

const usage = `Send a patient line and get a 24h fluid plan, e.g.
plan weight=70 gender=male age=45 na=132 k=3.2 hco3=22 npo=8 flags=chf,long_npo`

func main() {
	token := os.Getenv("TOKEN_BOT")
	if token == "" {
		log.Fatal("TOKEN_BOT missing")
	}

	calc := plan.New()

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
				handleMessage(token, calc, u.Message)
			}
		}
		time.Sleep(1 * time.Second)
	}
}

func handleMessage(token string, calc plan.Calculator, msg *Message) {
	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(strings.ToLower(text), "plan ") {
		sendMessage(token, msg.Chat.ID, usage)
		return
	}

	input, err := parsePlanLine(text)
	if err != nil {
		sendMessage(token, msg.Chat.ID, "Could not read that: "+err.Error())
		return
	}
	res, err := calc.Calculate(input)
	if err != nil {
		sendMessage(token, msg.Chat.ID, "Plan error: "+err.Error())
		return
	}
	sendMessage(token, msg.Chat.ID, summarize(input, res))
}

func parsePlanLine(text string) (plan.Input, error) {
	in := plan.Input{}
	for _, field := range strings.Fields(text)[1:] {
		parts := strings.SplitN(field, "=", 2)
		if len(parts) != 2 {
			return plan.Input{}, fmt.Errorf("bad field %q", field)
		}
		key, val := strings.ToLower(parts[0]), parts[1]
		switch key {
		case "gender":
			in.Gender = tbw.Gender(strings.ToLower(val))
		case "flags":
			for _, flag := range strings.Split(strings.ToLower(val), ",") {
				switch flag {
				case "obese":
					in.Obese = true
				case "malnourished":
					in.Malnourished = true
				case "chf":
					in.CHF = true
				case "pediatric":
					in.Pediatric = true
				case "insulin":
					in.InsulinInfusion = true
				case "long_npo":
					in.LongNpo = true
				default:
					return plan.Input{}, fmt.Errorf("unknown flag %q", flag)
				}
			}
		default:
			var v float64
			if _, err := fmt.Sscanf(val, "%f", &v); err != nil {
				return plan.Input{}, fmt.Errorf("bad value for %s", key)
			}
			switch key {
			case "age":
				in.Age = int(v)
			case "weight":
				in.WeightKg = v
			case "npo":
				in.NpoHours = v
			case "na":
				in.SerumNa = v
			case "k":
				in.SerumK = v
			case "hco3":
				in.SerumHCO3 = v
			case "glucose":
				in.BloodGlucose = v
			default:
				return plan.Input{}, fmt.Errorf("unknown field %q", key)
			}
		}
	}
	return in, nil
}

func summarize(in plan.Input, res plan.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TBW: %.1f L\n", res.TBWLiters)
	fmt.Fprintf(&b, "Maintenance: %.0f mL/24h (%.0f mL/h)\n", res.MaintenanceVolume24hMl, res.MaintenanceRateMlPerHr)
	fmt.Fprintf(&b, "Deficit (NPO %.0fh): %.0f mL\n", in.NpoHours, res.DeficitMl)
	fmt.Fprintf(&b, "Total 24h: %.0f mL\n", res.TotalVolume24hMl)
	fmt.Fprintf(&b, "Deficits: Na %.0f / K %.0f / HCO3 %.0f mEq\n", res.SodiumDeficitMEq, res.PotassiumDeficitMEq, res.BaseDeficitMEq)
	fmt.Fprintf(&b, "Order: %s", res.OrderText)
	return b.String()
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
