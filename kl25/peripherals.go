package kl25

// Peripherals is the complete token set. A value is produced once by Steal.
type Peripherals struct {
	PTA0  PTA0
	PTA1  PTA1
	PTA2  PTA2
	PTA3  PTA3
	PTA4  PTA4
	PTA5  PTA5
	PTA6  PTA6
	PTA7  PTA7
	PTA8  PTA8
	PTA9  PTA9
	PTA10 PTA10
	PTA11 PTA11
	PTA12 PTA12
	PTA13 PTA13
	PTA14 PTA14
	PTA15 PTA15
	PTA16 PTA16
	PTA17 PTA17
	PTA18 PTA18
	PTA19 PTA19
	PTA20 PTA20
	PTA21 PTA21
	PTA22 PTA22
	PTA23 PTA23
	PTA24 PTA24
	PTA25 PTA25
	PTA26 PTA26
	PTA27 PTA27
	PTA28 PTA28
	PTA29 PTA29
	PTA30 PTA30
	PTA31 PTA31
	PTB0  PTB0
	PTB1  PTB1
	PTB2  PTB2
	PTB3  PTB3
	PTB4  PTB4
	PTB5  PTB5
	PTB6  PTB6
	PTB7  PTB7
	PTB8  PTB8
	PTB9  PTB9
	PTB10 PTB10
	PTB11 PTB11
	PTB12 PTB12
	PTB13 PTB13
	PTB14 PTB14
	PTB15 PTB15
	PTB16 PTB16
	PTB17 PTB17
	PTB18 PTB18
	PTB19 PTB19
	PTB20 PTB20
	PTB21 PTB21
	PTB22 PTB22
	PTB23 PTB23
	PTB24 PTB24
	PTB25 PTB25
	PTB26 PTB26
	PTB27 PTB27
	PTB28 PTB28
	PTB29 PTB29
	PTB30 PTB30
	PTB31 PTB31
	PTC0  PTC0
	PTC1  PTC1
	PTC2  PTC2
	PTC3  PTC3
	PTC4  PTC4
	PTC5  PTC5
	PTC6  PTC6
	PTC7  PTC7
	PTC8  PTC8
	PTC9  PTC9
	PTC10 PTC10
	PTC11 PTC11
	PTC12 PTC12
	PTC13 PTC13
	PTC14 PTC14
	PTC15 PTC15
	PTC16 PTC16
	PTC17 PTC17
	PTC18 PTC18
	PTC19 PTC19
	PTC20 PTC20
	PTC21 PTC21
	PTC22 PTC22
	PTC23 PTC23
	PTC24 PTC24
	PTC25 PTC25
	PTC26 PTC26
	PTC27 PTC27
	PTC28 PTC28
	PTC29 PTC29
	PTC30 PTC30
	PTC31 PTC31
	PTD0  PTD0
	PTD1  PTD1
	PTD2  PTD2
	PTD3  PTD3
	PTD4  PTD4
	PTD5  PTD5
	PTD6  PTD6
	PTD7  PTD7
	PTD8  PTD8
	PTD9  PTD9
	PTD10 PTD10
	PTD11 PTD11
	PTD12 PTD12
	PTD13 PTD13
	PTD14 PTD14
	PTD15 PTD15
	PTD16 PTD16
	PTD17 PTD17
	PTD18 PTD18
	PTD19 PTD19
	PTD20 PTD20
	PTD21 PTD21
	PTD22 PTD22
	PTD23 PTD23
	PTD24 PTD24
	PTD25 PTD25
	PTD26 PTD26
	PTD27 PTD27
	PTD28 PTD28
	PTD29 PTD29
	PTD30 PTD30
	PTD31 PTD31
	PTE0  PTE0
	PTE1  PTE1
	PTE2  PTE2
	PTE3  PTE3
	PTE4  PTE4
	PTE5  PTE5
	PTE6  PTE6
	PTE7  PTE7
	PTE8  PTE8
	PTE9  PTE9
	PTE10 PTE10
	PTE11 PTE11
	PTE12 PTE12
	PTE13 PTE13
	PTE14 PTE14
	PTE15 PTE15
	PTE16 PTE16
	PTE17 PTE17
	PTE18 PTE18
	PTE19 PTE19
	PTE20 PTE20
	PTE21 PTE21
	PTE22 PTE22
	PTE23 PTE23
	PTE24 PTE24
	PTE25 PTE25
	PTE26 PTE26
	PTE27 PTE27
	PTE28 PTE28
	PTE29 PTE29
	PTE30 PTE30
	PTE31 PTE31

	DMA0 DMA0
	DMA1 DMA1
	DMA2 DMA2
	DMA3 DMA3

	SPI0 SPI0
	SPI1 SPI1

	TPM0 TPM0
	TPM1 TPM1
	TPM2 TPM2
}
