package faq

// SpecialPattern hand-boosts a known high-value question pairing: when the
// user input contains one of the phrases and the entry's question or keywords
// contain it too, the bonus is added on top of generic scoring.
type SpecialPattern struct {
	Name    string
	Phrases []string
	Bonus   float64
}

// defaultPatterns covers the questions members most often phrase in ways the
// generic signals under-rank. Bonuses sit between 12 and 20 so a pattern hit
// clears scoring noise without drowning an exact match.
var defaultPatterns = []SpecialPattern{
	{
		Name:    "cannot_access_old_email",
		Phrases: []string{"เข้าอีเมลเดิมไม่ได้", "อีเมลเดิมใช้ไม่ได้", "ไม่มีอีเมลเดิม", "ลืมรหัสอีเมลเดิม"},
		Bonus:   20,
	},
	{
		Name:    "change_address",
		Phrases: []string{"เปลี่ยนที่อยู่", "แก้ไขที่อยู่", "ย้ายที่อยู่", "อัปเดตที่อยู่"},
		Bonus:   18,
	},
	{
		Name:    "change_email",
		Phrases: []string{"เปลี่ยนอีเมล", "แก้ไขอีเมล", "อัปเดตอีเมล"},
		Bonus:   16,
	},
	{
		Name:    "forgot_password",
		Phrases: []string{"ลืมรหัสผ่าน", "จำรหัสผ่านไม่ได้", "รีเซ็ตรหัสผ่าน"},
		Bonus:   15,
	},
	{
		Name:    "membership_certificate",
		Phrases: []string{"หนังสือรับรองสมาชิก", "ขอหนังสือรับรอง", "ใบรับรองสมาชิก"},
		Bonus:   14,
	},
	{
		Name:    "how_to_register",
		Phrases: []string{"สมัครสมาชิกอย่างไร", "สมัครยังไง", "วิธีสมัครสมาชิก"},
		Bonus:   12,
	},
}
