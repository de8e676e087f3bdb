package orientation

// translations.go holds the static guidance text tables.
//
// The tables are read-only for the life of the process. The Japanese
// source text is the legal text of the confirmation form (参考様式第
// ５－８号); the translations are shown alongside it in the guidance
// view so the worker reads the items in a language they understand
// before signing.

import "sort"

// LanguageEntry is the guidance text and UI labels for one language.
type LanguageEntry struct {
	Code           string
	Title          string
	Items          []string
	SignatureLabel string
	AgreeLabel     string
	SubmitLabel    string
}

// SourceText is the fixed Japanese legal text. The generated PDF always
// uses this text regardless of which UI language the session ran in:
// the confirmation form is issued in Japanese.
type SourceText struct {
	Title string
	Items []string
}

var sourceText = SourceText{
	Title: "生活オリエンテーションの確認書",
	Items: []string{
		"１ 私の日本での生活一般に関する事項",
		"２ 私が出入国管理及び難民認定法第１９条の１６その他の法令の規定により履行しなければならない又は履行すべき国又は地方公共団体の機関に対する届出その他の手続に関する事項",
		"３ 私が把握しておくべき、特定技能所属機関又は当該特定技能所属機関から契約により私の支援の実施の委託を受けた者において相談又は苦情の申出に対応することとされている者の連絡先及びこれらの相談又は苦情の申出をすべき国又は地方公共団体の機関の連絡先",
		"４ 私が十分に理解することができる言語により医療を受けることができる医療機関に関する事項",
		"５ 防災及び防犯に関する事項並びに急病その他の緊急時における対応に必要な事項",
		"６ 出入国又は労働に関する法令の規定に違反していることを知ったときの対応方法その他私の法的保護に必要な事項",
	},
}

var translations = map[string]LanguageEntry{
	"en": {
		Code:  "en",
		Title: "Confirmation of Living Orientation",
		Items: []string{
			"1. Matters concerning my general life in Japan.",
			"2. Matters concerning notifications and other procedures to national and local government organizations that I must or should perform under the provisions of the Immigration Control and Refugee Recognition Act and other laws and regulations.",
			"3. Contact information for persons designated by the organization of affiliation for specified skilled workers or a person entrusted by said organization to handle consultations or complaints, and contact information for national or local government organizations where such consultations or complaints should be made.",
			"4. Matters concerning medical institutions where I can receive medical care in a language I can fully understand.",
			"5. Matters concerning disaster prevention and crime prevention, as well as necessary responses in case of sudden illness or other emergencies.",
			"6. How to respond upon learning of a violation of the provisions of laws and regulations concerning immigration or labor, and other matters necessary for my legal protection.",
		},
		SignatureLabel: "Signature of the Specified Skilled Worker",
		AgreeLabel:     "I confirm and agree to all the contents above.",
		SubmitLabel:    "Submit Signature and Proceed",
	},
	"id": {
		Code:  "id",
		Title: "Konfirmasi Orientasi Kehidupan",
		Items: []string{
			"1. Hal-hal mengenai kehidupan umum saya di Jepang.",
			"2. Hal-hal mengenai pemberitahuan dan prosedur lain kepada organisasi pemerintah pusat dan daerah yang harus atau sebaiknya saya lakukan berdasarkan ketentuan Undang-Undang Kontrol Imigrasi dan Pengakuan Pengungsi serta hukum dan peraturan lainnya.",
			"3. Informasi kontak orang yang ditunjuk oleh organisasi afiliasi untuk pekerja terampil spesifik atau orang yang dipercaya oleh organisasi tersebut untuk menangani konsultasi atau keluhan, dan informasi kontak organisasi pemerintah pusat atau daerah tempat konsultasi atau keluhan tersebut harus diajukan.",
			"4. Hal-hal mengenai institusi medis di mana saya dapat menerima perawatan medis dalam bahasa yang dapat saya pahami sepenuhnya.",
			"5. Hal-hal mengenai pencegahan bencana dan kejahatan, serta respons yang diperlukan dalam keadaan darurat seperti sakit mendadak.",
			"6. Cara merespons setelah mengetahui adanya pelanggaran terhadap ketentuan hukum dan peraturan mengenai imigrasi atau ketenagakerjaan, dan hal-hal lain yang diperlukan untuk perlindungan hukum saya.",
		},
		SignatureLabel: "Tanda Tangan Pekerja Berketerampilan Spesifik",
		AgreeLabel:     "Saya mengonfirmasi dan menyetujui semua isi di atas.",
		SubmitLabel:    "Kirim Tanda Tangan dan Lanjutkan",
	},
	"my": {
		Code:  "my",
		Title: "နေထိုင်မှုဆိုင်ရာ အခြေခံသင်တန်း အတည်ပြုလွှာ",
		Items: []string{
			"၁။ ဂျပန်နိုင်ငံတွင် ကျွန်ုပ်၏ ယေဘုယျဘဝနေထိုင်မှုနှင့် သက်ဆိုင်သော အချက်များ။",
			"၂။ လူဝင်မှုကြီးကြပ်ရေးနှင့် ဒုက္ခသည်များဆိုင်ရာ အသိအမှတ်ပြုခြင်း အက်ဥပဒေနှင့် အခြားဥပဒေများပါ ပြဋ္ဌာန်းချက်များအရ ကျွန်ုပ်လိုက်နာဆောင်ရွက်ရမည့် သို့မဟုတ် ဆောင်ရွက်သင့်သည့် နိုင်ငံတော် သို့မဟုတ် ဒေသဆိုင်ရာ အစိုးရအဖွဲ့အစည်းများသို့ အကြောင်းကြားချက်များနှင့် အခြားလုပ်ထုံးလုပ်နည်းများဆိုင်ရာ အချက်များ။",
			"၃။ သတ်မှတ်ထားသော ကျွမ်းကျင်လုပ်သားများအတွက် လက်ခံအဖွဲ့အစည်း သို့မဟုတ် အဆိုပါအဖွဲ့အစည်းမှ တိုင်ပင်ဆွေးနွေးမှုများ သို့မဟုတ် တိုင်ကြားချက်များကို ကိုင်တွယ်ရန် တာဝန်ပေးအပ်ထားသူ၏ ဆက်သွယ်ရန် အချက်အလက်နှင့် အဆိုပါတိုင်ပင်ဆွေးနွေးမှုများ သို့မဟုတ် တိုင်ကြားချက်များကို တင်ပြသင့်သည့် နိုင်ငံတော် သို့မဟုတ် ဒေသဆိုင်ရာ အစိုးရအဖွဲ့အစည်းများ၏ ဆက်သွယ်ရန် အချက်အလက်များ။",
			"၄။ ကျွန်ုပ်အပြည့်အဝနားလည်နိုင်သော ဘာသာစကားဖြင့် ဆေးကုသမှုခံယူနိုင်သည့် ဆေးဘက်ဆိုင်ရာ အဖွဲ့အစည်းများဆိုင်ရာ အချက်များ။",
			"၅။ ဘေးအန္တရာယ်ကာကွယ်ရေးနှင့် ရာဇဝတ်မှုကာကွယ်ရေးဆိုင်ရာ အချက်များအပြင် ရုတ်တရက်ဖျားနာမှု သို့မဟုတ် အခြားအရေးပေါ်အခြေအနေများတွင် လိုအပ်သော တုံ့ပြန်ဆောင်ရွက်မှုများဆိုင်ရာ အချက်များ။",
			"၆။ လူဝင်မှုကြီးကြပ်ရေး သို့မဟုတ် အလုပ်သမားရေးရာ ဥပဒေပြဋ္ဌာန်းချက်များကို ချိုးဖောက်ကြောင်း သိရှိလာသည့်အခါ တုံ့ပြန်ဆောင်ရွက်ရမည့် နည်းလမ်းနှင့် ကျွန်ုပ်၏ တရားဝင်အကာအကွယ်အတွက် လိုအပ်သောအခြားအချက်များ။",
		},
		SignatureLabel: "သတ်မှတ်ထားသော ကျွမ်းကျင်လုပ်သား၏ လက်မှတ်",
		AgreeLabel:     "အထက်ပါ အကြောင်းအရာအားလုံးကို ကျွန်ုပ် အတည်ပြုပြီး သဘောတူပါသည်။",
		SubmitLabel:    "လက်မှတ်ထိုးပြီး ဆက်လက်ဆောင်ရွက်ပါ",
	},
	"vi": {
		Code:  "vi",
		Title: "Giấy xác nhận về Buổi hướng dẫn Sinh hoạt",
		Items: []string{
			"1. Các vấn đề liên quan đến đời sống chung của tôi tại Nhật Bản.",
			"2. Các vấn đề liên quan đến thông báo và các thủ tục khác cho các cơ quan chính phủ quốc gia và địa phương mà tôi phải hoặc nên thực hiện theo quy định của Luật Kiểm soát Xuất nhập cảnh và Công nhận Người tị nạn và các luật lệ khác.",
			"3. Thông tin liên lạc của người được chỉ định bởi tổ chức tiếp nhận lao động kỹ năng đặc định hoặc người được tổ chức đó ủy thác để xử lý các cuộc tư vấn hoặc khiếu nại, và thông tin liên lạc của các cơ quan chính phủ quốc gia hoặc địa phương nơi nên đưa ra các cuộc tư vấn hoặc khiếu nại đó.",
			"4. Các vấn đề liên quan đến các cơ sở y tế nơi tôi có thể nhận được sự chăm sóc y tế bằng ngôn ngữ mà tôi có thể hiểu đầy đủ.",
			"5. Các vấn đề liên quan đến phòng chống thiên tai và phòng chống tội phạm, cũng như các biện pháp ứng phó cần thiết trong trường hợp khẩn cấp như bệnh đột ngột.",
			"6. Cách ứng phó khi biết về hành vi vi phạm các quy định của pháp luật về xuất nhập cảnh hoặc lao động, và các vấn đề khác cần thiết cho sự bảo vệ pháp lý của tôi.",
		},
		SignatureLabel: "Chữ ký của Người lao động Kỹ năng Đặc định",
		AgreeLabel:     "Tôi xác nhận và đồng ý với tất cả các nội dung trên.",
		SubmitLabel:    "Gửi chữ ký và Tiếp tục",
	},
	"th": {
		Code:  "th",
		Title: "เอกสารยืนยันการปฐมนิเทศการใช้ชีวิต",
		Items: []string{
			"1. เรื่องที่เกี่ยวกับชีวิตทั่วไปของฉันในประเทศญี่ปุ่น",
			"2. เรื่องที่เกี่ยวกับการแจ้งเตือนและขั้นตอนอื่น ๆ ต่อหน่วยงานของรัฐบาลกลางและท้องถิ่นที่ฉันต้องหรือควรปฏิบัติภายใต้บทบัญญัติของพระราชบัญญัติควบคุมคนเข้าเมืองและผู้ลี้ภัยและกฎหมายและข้อบังคับอื่น ๆ",
			"3. ข้อมูลติดต่อของบุคคลที่ได้รับมอบหมายจากองค์กรต้นสังกัดสำหรับแรงงานทักษะเฉพาะหรือบุคคลที่ได้รับความไว้วางใจจากองค์กรดังกล่าวในการจัดการกับการให้คำปรึกษาหรือข้อร้องเรียน และข้อมูลติดต่อของหน่วยงานของรัฐบาลกลางหรือท้องถิ่นที่ควรยื่นคำปรึกษาหรือข้อร้องเรียนดังกล่าว",
			"4. เรื่องที่เกี่ยวกับสถาบันทางการแพทย์ที่ฉันสามารถรับการรักษาพยาบาลในภาษาที่ฉันสามารถเข้าใจได้อย่างถ่องแท้",
			"5. เรื่องที่เกี่ยวกับการป้องกันภัยพิบัติและการป้องกันอาชญากรรม ตลอดจนการตอบสนองที่จำเป็นในกรณีฉุกเฉิน เช่น การเจ็บป่วยกะทันหัน",
			"6. วิธีตอบสนองเมื่อทราบถึงการละเมิดบทบัญญัติของกฎหมายและข้อบังคับเกี่ยวกับการเข้าเมืองหรือแรงงาน และเรื่องอื่น ๆ ที่จำเป็นสำหรับการคุ้มครองทางกฎหมายของฉัน",
		},
		SignatureLabel: "ลายมือชื่อของแรงงานทักษะเฉพาะ",
		AgreeLabel:     "ข้าพเจ้ายืนยันและยอมรับเนื้อหาทั้งหมดข้างต้น",
		SubmitLabel:    "ส่งลายมือชื่อและดำเนินการต่อ",
	},
}

// JapaneseText returns the fixed Japanese source text.
func JapaneseText() SourceText {
	return sourceText
}

// Lookup returns the guidance text for a UI language code.
func Lookup(code string) (LanguageEntry, bool) {
	entry, ok := translations[code]
	return entry, ok
}

// Languages returns the supported UI language codes in sorted order.
func Languages() []string {
	codes := make([]string, 0, len(translations))
	for code := range translations {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
