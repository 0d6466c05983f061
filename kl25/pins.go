package kl25

// Physical pins PTA0 .. PTE31. Each pin is its own type so that pin-role
// associations are checked by the compiler.

type PTA0 struct{ pin }

func (PTA0) ID() PinID { return 0 }

type PTA1 struct{ pin }

func (PTA1) ID() PinID { return 1 }

type PTA2 struct{ pin }

func (PTA2) ID() PinID { return 2 }

type PTA3 struct{ pin }

func (PTA3) ID() PinID { return 3 }

type PTA4 struct{ pin }

func (PTA4) ID() PinID { return 4 }

type PTA5 struct{ pin }

func (PTA5) ID() PinID { return 5 }

type PTA6 struct{ pin }

func (PTA6) ID() PinID { return 6 }

type PTA7 struct{ pin }

func (PTA7) ID() PinID { return 7 }

type PTA8 struct{ pin }

func (PTA8) ID() PinID { return 8 }

type PTA9 struct{ pin }

func (PTA9) ID() PinID { return 9 }

type PTA10 struct{ pin }

func (PTA10) ID() PinID { return 10 }

type PTA11 struct{ pin }

func (PTA11) ID() PinID { return 11 }

type PTA12 struct{ pin }

func (PTA12) ID() PinID { return 12 }

type PTA13 struct{ pin }

func (PTA13) ID() PinID { return 13 }

type PTA14 struct{ pin }

func (PTA14) ID() PinID { return 14 }

type PTA15 struct{ pin }

func (PTA15) ID() PinID { return 15 }

type PTA16 struct{ pin }

func (PTA16) ID() PinID { return 16 }

type PTA17 struct{ pin }

func (PTA17) ID() PinID { return 17 }

type PTA18 struct{ pin }

func (PTA18) ID() PinID { return 18 }

type PTA19 struct{ pin }

func (PTA19) ID() PinID { return 19 }

type PTA20 struct{ pin }

func (PTA20) ID() PinID { return 20 }

type PTA21 struct{ pin }

func (PTA21) ID() PinID { return 21 }

type PTA22 struct{ pin }

func (PTA22) ID() PinID { return 22 }

type PTA23 struct{ pin }

func (PTA23) ID() PinID { return 23 }

type PTA24 struct{ pin }

func (PTA24) ID() PinID { return 24 }

type PTA25 struct{ pin }

func (PTA25) ID() PinID { return 25 }

type PTA26 struct{ pin }

func (PTA26) ID() PinID { return 26 }

type PTA27 struct{ pin }

func (PTA27) ID() PinID { return 27 }

type PTA28 struct{ pin }

func (PTA28) ID() PinID { return 28 }

type PTA29 struct{ pin }

func (PTA29) ID() PinID { return 29 }

type PTA30 struct{ pin }

func (PTA30) ID() PinID { return 30 }

type PTA31 struct{ pin }

func (PTA31) ID() PinID { return 31 }

type PTB0 struct{ pin }

func (PTB0) ID() PinID { return 32 }

type PTB1 struct{ pin }

func (PTB1) ID() PinID { return 33 }

type PTB2 struct{ pin }

func (PTB2) ID() PinID { return 34 }

type PTB3 struct{ pin }

func (PTB3) ID() PinID { return 35 }

type PTB4 struct{ pin }

func (PTB4) ID() PinID { return 36 }

type PTB5 struct{ pin }

func (PTB5) ID() PinID { return 37 }

type PTB6 struct{ pin }

func (PTB6) ID() PinID { return 38 }

type PTB7 struct{ pin }

func (PTB7) ID() PinID { return 39 }

type PTB8 struct{ pin }

func (PTB8) ID() PinID { return 40 }

type PTB9 struct{ pin }

func (PTB9) ID() PinID { return 41 }

type PTB10 struct{ pin }

func (PTB10) ID() PinID { return 42 }

type PTB11 struct{ pin }

func (PTB11) ID() PinID { return 43 }

type PTB12 struct{ pin }

func (PTB12) ID() PinID { return 44 }

type PTB13 struct{ pin }

func (PTB13) ID() PinID { return 45 }

type PTB14 struct{ pin }

func (PTB14) ID() PinID { return 46 }

type PTB15 struct{ pin }

func (PTB15) ID() PinID { return 47 }

type PTB16 struct{ pin }

func (PTB16) ID() PinID { return 48 }

type PTB17 struct{ pin }

func (PTB17) ID() PinID { return 49 }

type PTB18 struct{ pin }

func (PTB18) ID() PinID { return 50 }

type PTB19 struct{ pin }

func (PTB19) ID() PinID { return 51 }

type PTB20 struct{ pin }

func (PTB20) ID() PinID { return 52 }

type PTB21 struct{ pin }

func (PTB21) ID() PinID { return 53 }

type PTB22 struct{ pin }

func (PTB22) ID() PinID { return 54 }

type PTB23 struct{ pin }

func (PTB23) ID() PinID { return 55 }

type PTB24 struct{ pin }

func (PTB24) ID() PinID { return 56 }

type PTB25 struct{ pin }

func (PTB25) ID() PinID { return 57 }

type PTB26 struct{ pin }

func (PTB26) ID() PinID { return 58 }

type PTB27 struct{ pin }

func (PTB27) ID() PinID { return 59 }

type PTB28 struct{ pin }

func (PTB28) ID() PinID { return 60 }

type PTB29 struct{ pin }

func (PTB29) ID() PinID { return 61 }

type PTB30 struct{ pin }

func (PTB30) ID() PinID { return 62 }

type PTB31 struct{ pin }

func (PTB31) ID() PinID { return 63 }

type PTC0 struct{ pin }

func (PTC0) ID() PinID { return 64 }

type PTC1 struct{ pin }

func (PTC1) ID() PinID { return 65 }

type PTC2 struct{ pin }

func (PTC2) ID() PinID { return 66 }

type PTC3 struct{ pin }

func (PTC3) ID() PinID { return 67 }

type PTC4 struct{ pin }

func (PTC4) ID() PinID { return 68 }

type PTC5 struct{ pin }

func (PTC5) ID() PinID { return 69 }

type PTC6 struct{ pin }

func (PTC6) ID() PinID { return 70 }

type PTC7 struct{ pin }

func (PTC7) ID() PinID { return 71 }

type PTC8 struct{ pin }

func (PTC8) ID() PinID { return 72 }

type PTC9 struct{ pin }

func (PTC9) ID() PinID { return 73 }

type PTC10 struct{ pin }

func (PTC10) ID() PinID { return 74 }

type PTC11 struct{ pin }

func (PTC11) ID() PinID { return 75 }

type PTC12 struct{ pin }

func (PTC12) ID() PinID { return 76 }

type PTC13 struct{ pin }

func (PTC13) ID() PinID { return 77 }

type PTC14 struct{ pin }

func (PTC14) ID() PinID { return 78 }

type PTC15 struct{ pin }

func (PTC15) ID() PinID { return 79 }

type PTC16 struct{ pin }

func (PTC16) ID() PinID { return 80 }

type PTC17 struct{ pin }

func (PTC17) ID() PinID { return 81 }

type PTC18 struct{ pin }

func (PTC18) ID() PinID { return 82 }

type PTC19 struct{ pin }

func (PTC19) ID() PinID { return 83 }

type PTC20 struct{ pin }

func (PTC20) ID() PinID { return 84 }

type PTC21 struct{ pin }

func (PTC21) ID() PinID { return 85 }

type PTC22 struct{ pin }

func (PTC22) ID() PinID { return 86 }

type PTC23 struct{ pin }

func (PTC23) ID() PinID { return 87 }

type PTC24 struct{ pin }

func (PTC24) ID() PinID { return 88 }

type PTC25 struct{ pin }

func (PTC25) ID() PinID { return 89 }

type PTC26 struct{ pin }

func (PTC26) ID() PinID { return 90 }

type PTC27 struct{ pin }

func (PTC27) ID() PinID { return 91 }

type PTC28 struct{ pin }

func (PTC28) ID() PinID { return 92 }

type PTC29 struct{ pin }

func (PTC29) ID() PinID { return 93 }

type PTC30 struct{ pin }

func (PTC30) ID() PinID { return 94 }

type PTC31 struct{ pin }

func (PTC31) ID() PinID { return 95 }

type PTD0 struct{ pin }

func (PTD0) ID() PinID { return 96 }

type PTD1 struct{ pin }

func (PTD1) ID() PinID { return 97 }

type PTD2 struct{ pin }

func (PTD2) ID() PinID { return 98 }

type PTD3 struct{ pin }

func (PTD3) ID() PinID { return 99 }

type PTD4 struct{ pin }

func (PTD4) ID() PinID { return 100 }

type PTD5 struct{ pin }

func (PTD5) ID() PinID { return 101 }

type PTD6 struct{ pin }

func (PTD6) ID() PinID { return 102 }

type PTD7 struct{ pin }

func (PTD7) ID() PinID { return 103 }

type PTD8 struct{ pin }

func (PTD8) ID() PinID { return 104 }

type PTD9 struct{ pin }

func (PTD9) ID() PinID { return 105 }

type PTD10 struct{ pin }

func (PTD10) ID() PinID { return 106 }

type PTD11 struct{ pin }

func (PTD11) ID() PinID { return 107 }

type PTD12 struct{ pin }

func (PTD12) ID() PinID { return 108 }

type PTD13 struct{ pin }

func (PTD13) ID() PinID { return 109 }

type PTD14 struct{ pin }

func (PTD14) ID() PinID { return 110 }

type PTD15 struct{ pin }

func (PTD15) ID() PinID { return 111 }

type PTD16 struct{ pin }

func (PTD16) ID() PinID { return 112 }

type PTD17 struct{ pin }

func (PTD17) ID() PinID { return 113 }

type PTD18 struct{ pin }

func (PTD18) ID() PinID { return 114 }

type PTD19 struct{ pin }

func (PTD19) ID() PinID { return 115 }

type PTD20 struct{ pin }

func (PTD20) ID() PinID { return 116 }

type PTD21 struct{ pin }

func (PTD21) ID() PinID { return 117 }

type PTD22 struct{ pin }

func (PTD22) ID() PinID { return 118 }

type PTD23 struct{ pin }

func (PTD23) ID() PinID { return 119 }

type PTD24 struct{ pin }

func (PTD24) ID() PinID { return 120 }

type PTD25 struct{ pin }

func (PTD25) ID() PinID { return 121 }

type PTD26 struct{ pin }

func (PTD26) ID() PinID { return 122 }

type PTD27 struct{ pin }

func (PTD27) ID() PinID { return 123 }

type PTD28 struct{ pin }

func (PTD28) ID() PinID { return 124 }

type PTD29 struct{ pin }

func (PTD29) ID() PinID { return 125 }

type PTD30 struct{ pin }

func (PTD30) ID() PinID { return 126 }

type PTD31 struct{ pin }

func (PTD31) ID() PinID { return 127 }

type PTE0 struct{ pin }

func (PTE0) ID() PinID { return 128 }

type PTE1 struct{ pin }

func (PTE1) ID() PinID { return 129 }

type PTE2 struct{ pin }

func (PTE2) ID() PinID { return 130 }

type PTE3 struct{ pin }

func (PTE3) ID() PinID { return 131 }

type PTE4 struct{ pin }

func (PTE4) ID() PinID { return 132 }

type PTE5 struct{ pin }

func (PTE5) ID() PinID { return 133 }

type PTE6 struct{ pin }

func (PTE6) ID() PinID { return 134 }

type PTE7 struct{ pin }

func (PTE7) ID() PinID { return 135 }

type PTE8 struct{ pin }

func (PTE8) ID() PinID { return 136 }

type PTE9 struct{ pin }

func (PTE9) ID() PinID { return 137 }

type PTE10 struct{ pin }

func (PTE10) ID() PinID { return 138 }

type PTE11 struct{ pin }

func (PTE11) ID() PinID { return 139 }

type PTE12 struct{ pin }

func (PTE12) ID() PinID { return 140 }

type PTE13 struct{ pin }

func (PTE13) ID() PinID { return 141 }

type PTE14 struct{ pin }

func (PTE14) ID() PinID { return 142 }

type PTE15 struct{ pin }

func (PTE15) ID() PinID { return 143 }

type PTE16 struct{ pin }

func (PTE16) ID() PinID { return 144 }

type PTE17 struct{ pin }

func (PTE17) ID() PinID { return 145 }

type PTE18 struct{ pin }

func (PTE18) ID() PinID { return 146 }

type PTE19 struct{ pin }

func (PTE19) ID() PinID { return 147 }

type PTE20 struct{ pin }

func (PTE20) ID() PinID { return 148 }

type PTE21 struct{ pin }

func (PTE21) ID() PinID { return 149 }

type PTE22 struct{ pin }

func (PTE22) ID() PinID { return 150 }

type PTE23 struct{ pin }

func (PTE23) ID() PinID { return 151 }

type PTE24 struct{ pin }

func (PTE24) ID() PinID { return 152 }

type PTE25 struct{ pin }

func (PTE25) ID() PinID { return 153 }

type PTE26 struct{ pin }

func (PTE26) ID() PinID { return 154 }

type PTE27 struct{ pin }

func (PTE27) ID() PinID { return 155 }

type PTE28 struct{ pin }

func (PTE28) ID() PinID { return 156 }

type PTE29 struct{ pin }

func (PTE29) ID() PinID { return 157 }

type PTE30 struct{ pin }

func (PTE30) ID() PinID { return 158 }

type PTE31 struct{ pin }

func (PTE31) ID() PinID { return 159 }
