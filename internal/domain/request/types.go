package request

// Category is the fixed set of part categories a request can target.
// The set is closed: requests with any other value are rejected.
type Category string

const (
	CategoryBearing    Category = "BEARING"
	CategoryMotor      Category = "MOTOR"
	CategorySensor     Category = "SENSOR"
	CategoryPump       Category = "PUMP"
	CategoryValve      Category = "VALVE"
	CategoryController Category = "CONTROLLER"
)

func Categories() []Category {
	return []Category{
		CategoryBearing,
		CategoryMotor,
		CategorySensor,
		CategoryPump,
		CategoryValve,
		CategoryController,
	}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryBearing, CategoryMotor, CategorySensor, CategoryPump, CategoryValve, CategoryController:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Maker is the fixed set of part manufacturers.
type Maker string

const (
	MakerSKF        Maker = "SKF"
	MakerNSK        Maker = "NSK"
	MakerNTN        Maker = "NTN"
	MakerSiemens    Maker = "SIEMENS"
	MakerMitsubishi Maker = "MITSUBISHI"
	MakerOmron      Maker = "OMRON"
	MakerOther      Maker = "OTHER"
)

func (m Maker) String() string {
	return string(m)
}

func (m Maker) IsValid() bool {
	switch m {
	case MakerSKF, MakerNSK, MakerNTN, MakerSiemens, MakerMitsubishi, MakerOmron, MakerOther:
		return true
	default:
		return false
	}
}

func NewMaker(s string) (Maker, error) {
	m := Maker(s)
	if !m.IsValid() {
		return "", ErrInvalidMaker
	}
	return m, nil
}

// Status is the request lifecycle state. CLOSED is terminal and is reached
// only through quote selection.
type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
)

func (s Status) String() string {
	return string(s)
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if st != StatusOpen && st != StatusClosed {
		return "", ErrInvalidStatus
	}
	return st, nil
}
