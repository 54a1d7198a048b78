package text

// defaultSynonyms maps a canonical term to its variant spellings and English
// equivalents. Matching either side of a cluster pulls in the whole cluster.
// Entries are normalized at table construction.
var defaultSynonyms = map[string][]string{
	"สมัคร":      {"ลงทะเบียน", "สมัครสมาชิก", "register", "signup"},
	"แก้ไข":      {"เปลี่ยน", "เปลี่ยนแปลง", "อัปเดต", "ปรับปรุง", "edit"},
	"อีเมล":      {"อีเมล์", "เมล", "เมล์", "email", "e-mail"},
	"รหัสผ่าน":   {"รหัส", "พาสเวิร์ด", "password"},
	"ที่อยู่":    {"ที่อยู่จัดส่ง", "บ้านเลขที่", "address"},
	"เข้าสู่ระบบ": {"ล็อกอิน", "ลงชื่อเข้าใช้", "เข้าระบบ", "login"},
	"เอกสาร":     {"ไฟล์", "หนังสือรับรอง", "ใบเสร็จ", "document", "file"},
	"ติดต่อ":     {"สอบถาม", "เจ้าหน้าที่", "contact"},
	"อัปโหลด":    {"อัพโหลด", "แนบไฟล์", "upload"},
	"บัญชี":      {"โปรไฟล์", "ข้อมูลส่วนตัว", "แอคเคาท์", "account"},
	"ยืนยัน":     {"ยืนยันตัวตน", "รหัสยืนยัน", "otp", "verify"},
	"ลืม":        {"จำไม่ได้", "forgot"},
	"สมาชิก":     {"เมมเบอร์", "member"},
}
