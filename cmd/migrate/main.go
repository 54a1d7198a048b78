package main

import (
	"log"
	"os"

	"member-portal-be/internal/model"
	"member-portal-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	if err := db.AutoMigrate(&model.Faq{}); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 3. Seed the stock FAQ catalogue on an empty table
	var count int64
	if err := db.Model(&model.Faq{}).Count(&count).Error; err != nil {
		log.Fatalf("Error: Count failed: %v", err)
	}
	if count > 0 {
		log.Printf("Catalogue already has %d entries, skipping seed.", count)
		return
	}

	log.Printf("Seeding %d FAQ entries...", len(seedFaqs))
	if err := db.Create(&seedFaqs).Error; err != nil {
		log.Fatalf("Error: Seed failed: %v", err)
	}

	log.Println("✅ Success: Database migration completed.")
}

var seedFaqs = []model.Faq{
	{
		Question: "สมัครสมาชิกอย่างไร",
		Answer:   "เข้าเมนู \"สมัครสมาชิก\" กรอกข้อมูลส่วนตัว อีเมล และเบอร์โทรศัพท์ จากนั้นยืนยันอีเมลผ่านลิงก์ที่ระบบส่งให้ เจ้าหน้าที่จะตรวจสอบและอนุมัติภายใน 3 วันทำการ",
		Category: "registration",
		Keywords: "สมัคร,ลงทะเบียน,สมาชิกใหม่,register",
		IsActive: true,
	},
	{
		Question: "ลืมรหัสผ่านต้องทำอย่างไร",
		Answer:   "กดปุ่ม \"ลืมรหัสผ่าน\" ที่หน้าเข้าสู่ระบบ กรอกอีเมลที่ลงทะเบียนไว้ ระบบจะส่งลิงก์ตั้งรหัสผ่านใหม่ให้ทางอีเมล ลิงก์มีอายุ 30 นาที",
		Category: "access_problem",
		Keywords: "ลืมรหัสผ่าน,รีเซ็ตรหัสผ่าน,password,เข้าระบบไม่ได้",
		IsActive: true,
	},
	{
		Question: "เปลี่ยนที่อยู่ได้ที่ไหน",
		Answer:   "เข้าเมนู \"ข้อมูลส่วนตัว\" เลือก \"แก้ไขที่อยู่\" กรอกที่อยู่ใหม่และกดบันทึก การเปลี่ยนที่อยู่จัดส่งเอกสารมีผลทันที",
		Category: "modification",
		Keywords: "เปลี่ยนที่อยู่,แก้ไขที่อยู่,ย้ายที่อยู่,address",
		IsActive: true,
	},
	{
		Question: "เปลี่ยนอีเมลที่ใช้เข้าสู่ระบบอย่างไร",
		Answer:   "เข้าเมนู \"บัญชี\" เลือก \"เปลี่ยนอีเมล\" กรอกอีเมลใหม่ ระบบจะส่งรหัสยืนยันไปที่อีเมลใหม่เพื่อยืนยันความเป็นเจ้าของก่อนบันทึก",
		Category: "modification",
		Keywords: "เปลี่ยนอีเมล,แก้ไขอีเมล,email",
		IsActive: true,
	},
	{
		Question: "เข้าอีเมลเดิมไม่ได้ จะเปลี่ยนอีเมลอย่างไร",
		Answer:   "หากเข้าอีเมลเดิมไม่ได้ ให้ติดต่อเจ้าหน้าที่พร้อมแนบสำเนาบัตรประชาชน เจ้าหน้าที่จะตรวจสอบตัวตนและเปลี่ยนอีเมลให้ภายใน 2 วันทำการ",
		Category: "access_problem",
		Keywords: "เข้าอีเมลเดิมไม่ได้,อีเมลเดิมใช้ไม่ได้,เปลี่ยนอีเมล",
		IsActive: true,
	},
	{
		Question: "ขอหนังสือรับรองสมาชิกอย่างไร",
		Answer:   "เข้าเมนู \"เอกสาร\" เลือก \"ขอหนังสือรับรอง\" ระบบจะสร้างไฟล์ PDF ให้ดาวน์โหลดได้ทันที เอกสารมีลายเซ็นอิเล็กทรอนิกส์กำกับ",
		Category: "document",
		Keywords: "หนังสือรับรอง,ใบรับรองสมาชิก,เอกสาร,pdf",
		IsActive: true,
	},
	{
		Question: "อัปโหลดเอกสารประกอบการสมัครอย่างไร",
		Answer:   "ในขั้นตอนการสมัคร กดปุ่ม \"แนบไฟล์\" เลือกไฟล์ภาพหรือ PDF ขนาดไม่เกิน 5MB ระบบรองรับไฟล์ .jpg .png และ .pdf",
		Category: "upload",
		Keywords: "อัปโหลด,แนบไฟล์,เอกสารประกอบ,upload",
		IsActive: true,
	},
	{
		Question: "ติดต่อเจ้าหน้าที่ได้ช่องทางไหน",
		Answer:   "ติดต่อได้ที่เบอร์ 02-123-4567 ในวันทำการ 8:30-16:30 น. หรืออีเมล support@member-portal.example ตอบกลับภายใน 1 วันทำการ",
		Category: "contact",
		Keywords: "ติดต่อ,เจ้าหน้าที่,เบอร์โทร,สอบถาม",
		IsActive: true,
	},
	{
		Question: "สถานะการสมัครรออนุมัตินานแค่ไหน",
		Answer:   "การตรวจสอบใช้เวลาไม่เกิน 3 วันทำการ หากเกินกำหนดให้ติดต่อเจ้าหน้าที่พร้อมแจ้งเลขที่ใบสมัคร",
		Category: "verification",
		Keywords: "รออนุมัติ,ตรวจสอบสถานะ,อนุมัติ,สถานะการสมัคร",
		IsActive: true,
	},
	{
		Question: "ระบบช้าหรือใช้งานไม่ได้ต้องทำอย่างไร",
		Answer:   "ลองล้างแคชเบราว์เซอร์และเข้าใหม่อีกครั้ง หากยังพบปัญหา แจ้งเจ้าหน้าที่พร้อมระบุเวลาและหน้าจอที่พบปัญหา",
		Category: "technical",
		Keywords: "ระบบช้า,ใช้งานไม่ได้,ขัดข้อง,error",
		IsActive: true,
	},
}
