package cli

// User-facing messages, kept in Bangla as on the original survey form.
const (
	msgSubmitOK       = "সার্ভে সফলভাবে জমা হয়েছে এবং Google Sheets এ সংরক্ষিত হয়েছে!"
	msgPartialSubmit  = "সার্ভে জমা হয়েছে, কিন্তু Google Sheets এ সংরক্ষণ করতে সমস্যা হয়েছে"
	msgDuplicatePhone = "এই ফোন নম্বরটি ইতিমধ্যে ব্যবহার করা হয়েছে! একই নম্বর দিয়ে দ্বিতীয়বার এন্ট্রি দেওয়া যাবে না।"
	msgNetwork        = "ইন্টারনেট সংযোগ বা সার্ভার সমস্যা আছে"
	msgServerError    = "সার্ভার এরর"
	msgBadFormat      = "ডেটা ফরম্যাট সঠিক নয়"
	msgNoData         = "কোন ডেটা নেই"
	msgExcelOK        = "এক্সেল ডাউনলোড সফল হয়েছে!"
)
