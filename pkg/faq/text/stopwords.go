package text

// defaultStopwords lists Thai particles, politeness suffixes and filler words
// that carry no matching signal. Entries are normalized at table construction,
// so natural spellings (with tone marks) are fine here.
var defaultStopwords = []string{
	"ครับ", "ค่ะ", "คะ", "ขา", "จ้า", "จ๊ะ", "นะ", "น่ะ", "สิ", "ล่ะ",
	"หรอ", "เหรอ", "ไหม", "มั้ย", "มั๊ย", "หน่อย", "ด้วย", "แล้ว", "ก็", "เลย",
	"ที่", "ซึ่ง", "อัน", "คือ", "เป็น", "อยาก", "จะ", "ให้", "ได้", "ไป",
	"มา", "อยู่", "และ", "หรือ", "แต่", "ของ", "ใน", "กับ", "ว่า", "ช่วย",
	"ต้อง", "การ", "ความ", "ผม", "ฉัน", "ดิฉัน", "เรา", "คุณ", "ท่าน", "มัน",
	"นี้", "นั้น", "ไง", "อ่ะ", "ฮะ", "งับ",
}
