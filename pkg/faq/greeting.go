package faq

import (
	"math/rand"
	"strings"
	"unicode/utf8"

	"member-portal-be/pkg/faq/intent"
)

// Greeting short-circuits the pipeline for inputs that are just a hello:
// short normalized input containing a greeting token, or a detected greeting
// intent.
const greetingMaxLen = 10

var greetingTokens = []string{
	"สวัสดี", "หวัดดี", "ดีครับ", "ดีคะ", "ทักทาย", "hello", "hi",
}

var greetingReplies = []string{
	"สวัสดีค่ะ ยินดีต้อนรับสู่ระบบสมาชิก มีอะไรให้ช่วยไหมคะ",
	"สวัสดีค่ะ สอบถามเรื่องสมาชิกได้เลยนะคะ",
	"สวัสดีค่ะ พิมพ์คำถามที่ต้องการสอบถามได้เลยค่ะ",
}

// StarterSuggestions are the portal's fixed widget prompts, shown with
// greetings and fallback copy.
var StarterSuggestions = []string{
	"สมัครสมาชิกอย่างไร",
	"ลืมรหัสผ่านต้องทำอย่างไร",
	"เปลี่ยนที่อยู่ได้ที่ไหน",
	"ขอหนังสือรับรองสมาชิกอย่างไร",
	"ติดต่อเจ้าหน้าที่ได้ช่องทางไหน",
}

func isGreeting(norm string, in *turnInput) bool {
	if utf8.RuneCountInString(norm) <= greetingMaxLen {
		for _, tok := range greetingTokens {
			if strings.Contains(norm, tok) {
				return true
			}
		}
	}
	return in.hasIntent(intent.Greeting)
}

func greetingResponse() *Response {
	return &Response{
		Type:        TypeGreeting,
		Question:    "สวัสดี",
		Answer:      greetingReplies[rand.Intn(len(greetingReplies))],
		Suggestions: StarterSuggestions,
	}
}
