package intent

// Intent names used across the engine.
const (
	Greeting      = "greeting"
	Registration  = "registration"
	Verification  = "verification"
	Modification  = "modification"
	AccessProblem = "access_problem"
	Contact       = "contact"
	Document      = "document"
	Technical     = "technical"
	Upload        = "upload"
	Account       = "account"
)

// defaultTaxonomy is the portal's fixed intent taxonomy. Keyword lists are
// hand-tuned against real member questions; keep them short and specific.
var defaultTaxonomy = []Category{
	{Name: Greeting, Keywords: []string{
		"สวัสดี", "หวัดดี", "ทักทาย", "ดีครับ", "ดีค่ะ", "hello", "hi",
	}},
	{Name: Registration, Keywords: []string{
		"สมัคร", "ลงทะเบียน", "สมาชิกใหม่", "register", "signup", "เข้าร่วม",
	}},
	{Name: Verification, Keywords: []string{
		"ยืนยัน", "ตรวจสอบ", "อนุมัติ", "otp", "รหัสยืนยัน", "รออนุมัติ",
	}},
	{Name: Modification, Keywords: []string{
		"แก้ไข", "เปลี่ยน", "อัปเดต", "ปรับปรุง", "ย้าย", "เปลี่ยนแปลง",
	}},
	{Name: AccessProblem, Keywords: []string{
		"เข้าไม่ได้", "ลืมรหัส", "ล็อกอินไม่ได้", "ใช้งานไม่ได้", "ถูกล็อก", "เข้าระบบไม่ได้",
	}},
	{Name: Contact, Keywords: []string{
		"ติดต่อ", "สอบถาม", "เจ้าหน้าที่", "เบอร์โทร", "โทร", "line",
	}},
	{Name: Document, Keywords: []string{
		"เอกสาร", "หนังสือรับรอง", "ใบเสร็จ", "ดาวน์โหลด", "pdf", "ใบรับรอง",
	}},
	{Name: Technical, Keywords: []string{
		"ขัดข้อง", "error", "ช้า", "ค้าง", "ระบบมีปัญหา", "บั๊ก",
	}},
	{Name: Upload, Keywords: []string{
		"อัปโหลด", "อัพโหลด", "แนบไฟล์", "ไฟล์แนบ", "รูปถ่าย", "รูปภาพ",
	}},
	{Name: Account, Keywords: []string{
		"บัญชี", "โปรไฟล์", "ข้อมูลส่วนตัว", "รหัสผ่าน", "อีเมล", "account",
	}},
}
