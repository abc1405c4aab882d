package fastsin

// sinTable holds samples of sin(2*pi*n/256) for n = -1 .. 258: one full
// period at 256 samples, one guard sample before phase zero and three
// after the period end. The guards let the 4-point interpolation window
// index..index+3 stay in bounds for every clamped index in [0, 256]
// without special-casing the wraparound.
//
// Invariants (up to the rounding baked into the literals):
//
//	sinTable[0] == sinTable[256]
//	sinTable[258] == sinTable[2]
//	sinTable[259] == sinTable[3]
var sinTable = [260]float32{
	-0.024541229009628296, 0.000000000000000000, 0.024541229009628296, 0.049067676067352295,
	0.073564566671848297, 0.098017141222953796, 0.122410677373409270, 0.146730467677116390,
	0.170961886644363400, 0.195090323686599730, 0.219101235270500180, 0.242980182170867920,
	0.266712754964828490, 0.290284663438797000, 0.313681751489639280, 0.336889863014221190,
	0.359895050525665280, 0.382683426141738890, 0.405241310596466060, 0.427555084228515630,
	0.449611335992813110, 0.471396744251251220, 0.492898195981979370, 0.514102756977081300,
	0.534997642040252690, 0.555570244789123540, 0.575808167457580570, 0.595699310302734380,
	0.615231573581695560, 0.634393274784088130, 0.653172850608825680, 0.671558976173400880,
	0.689540565013885500, 0.707106769084930420, 0.724247097969055180, 0.740951120853424070,
	0.757208824157714840, 0.773010432720184330, 0.788346409797668460, 0.803207516670227050,
	0.817584812641143800, 0.831469595432281490, 0.844853579998016360, 0.857728600502014160,
	0.870086967945098880, 0.881921291351318360, 0.893224298954010010, 0.903989315032958980,
	0.914209783077239990, 0.923879504203796390, 0.932992815971374510, 0.941544055938720700,
	0.949528157711029050, 0.956940352916717530, 0.963776051998138430, 0.970031261444091800,
	0.975702106952667240, 0.980785250663757320, 0.985277652740478520, 0.989176511764526370,
	0.992479562759399410, 0.995184719562530520, 0.997290432453155520, 0.998795449733734130,
	0.999698817729949950, 1.000000000000000000, 0.999698817729949950, 0.998795449733734130,
	0.997290432453155520, 0.995184719562530520, 0.992479562759399410, 0.989176511764526370,
	0.985277652740478520, 0.980785250663757320, 0.975702106952667240, 0.970031261444091800,
	0.963776051998138430, 0.956940352916717530, 0.949528157711029050, 0.941544055938720700,
	0.932992815971374510, 0.923879504203796390, 0.914209783077239990, 0.903989315032958980,
	0.893224298954010010, 0.881921291351318360, 0.870086967945098880, 0.857728600502014160,
	0.844853579998016360, 0.831469595432281490, 0.817584812641143800, 0.803207516670227050,
	0.788346409797668460, 0.773010432720184330, 0.757208824157714840, 0.740951120853424070,
	0.724247097969055180, 0.707106769084930420, 0.689540565013885500, 0.671558976173400880,
	0.653172850608825680, 0.634393274784088130, 0.615231573581695560, 0.595699310302734380,
	0.575808167457580570, 0.555570244789123540, 0.534997642040252690, 0.514102756977081300,
	0.492898195981979370, 0.471396744251251220, 0.449611335992813110, 0.427555084228515630,
	0.405241310596466060, 0.382683426141738890, 0.359895050525665280, 0.336889863014221190,
	0.313681751489639280, 0.290284663438797000, 0.266712754964828490, 0.242980182170867920,
	0.219101235270500180, 0.195090323686599730, 0.170961886644363400, 0.146730467677116390,
	0.122410677373409270, 0.098017141222953796, 0.073564566671848297, 0.049067676067352295,
	0.024541229009628296, 0.000000000000000122, -0.024541229009628296, -0.049067676067352295,
	-0.073564566671848297, -0.098017141222953796, -0.122410677373409270, -0.146730467677116390,
	-0.170961886644363400, -0.195090323686599730, -0.219101235270500180, -0.242980182170867920,
	-0.266712754964828490, -0.290284663438797000, -0.313681751489639280, -0.336889863014221190,
	-0.359895050525665280, -0.382683426141738890, -0.405241310596466060, -0.427555084228515630,
	-0.449611335992813110, -0.471396744251251220, -0.492898195981979370, -0.514102756977081300,
	-0.534997642040252690, -0.555570244789123540, -0.575808167457580570, -0.595699310302734380,
	-0.615231573581695560, -0.634393274784088130, -0.653172850608825680, -0.671558976173400880,
	-0.689540565013885500, -0.707106769084930420, -0.724247097969055180, -0.740951120853424070,
	-0.757208824157714840, -0.773010432720184330, -0.788346409797668460, -0.803207516670227050,
	-0.817584812641143800, -0.831469595432281490, -0.844853579998016360, -0.857728600502014160,
	-0.870086967945098880, -0.881921291351318360, -0.893224298954010010, -0.903989315032958980,
	-0.914209783077239990, -0.923879504203796390, -0.932992815971374510, -0.941544055938720700,
	-0.949528157711029050, -0.956940352916717530, -0.963776051998138430, -0.970031261444091800,
	-0.975702106952667240, -0.980785250663757320, -0.985277652740478520, -0.989176511764526370,
	-0.992479562759399410, -0.995184719562530520, -0.997290432453155520, -0.998795449733734130,
	-0.999698817729949950, -1.000000000000000000, -0.999698817729949950, -0.998795449733734130,
	-0.997290432453155520, -0.995184719562530520, -0.992479562759399410, -0.989176511764526370,
	-0.985277652740478520, -0.980785250663757320, -0.975702106952667240, -0.970031261444091800,
	-0.963776051998138430, -0.956940352916717530, -0.949528157711029050, -0.941544055938720700,
	-0.932992815971374510, -0.923879504203796390, -0.914209783077239990, -0.903989315032958980,
	-0.893224298954010010, -0.881921291351318360, -0.870086967945098880, -0.857728600502014160,
	-0.844853579998016360, -0.831469595432281490, -0.817584812641143800, -0.803207516670227050,
	-0.788346409797668460, -0.773010432720184330, -0.757208824157714840, -0.740951120853424070,
	-0.724247097969055180, -0.707106769084930420, -0.689540565013885500, -0.671558976173400880,
	-0.653172850608825680, -0.634393274784088130, -0.615231573581695560, -0.595699310302734380,
	-0.575808167457580570, -0.555570244789123540, -0.534997642040252690, -0.514102756977081300,
	-0.492898195981979370, -0.471396744251251220, -0.449611335992813110, -0.427555084228515630,
	-0.405241310596466060, -0.382683426141738890, -0.359895050525665280, -0.336889863014221190,
	-0.313681751489639280, -0.290284663438797000, -0.266712754964828490, -0.242980182170867920,
	-0.219101235270500180, -0.195090323686599730, -0.170961886644363400, -0.146730467677116390,
	-0.122410677373409270, -0.098017141222953796, -0.073564566671848297, -0.049067676067352295,
	-0.024541229009628296, -0.000000000000000245, 0.024541229009628296, 0.049067676067352295,
}

