/*
 * Copyright 2025 Adrià Giménez Pastor.
 *
 * This file is part of adriagipas/sunxifw.
 *
 * adriagipas/sunxifw is free software: you can redistribute it and/or
 * modify it under the terms of the GNU General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * adriagipas/sunxifw is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with adriagipas/sunxifw.  If not, see
 * <https://www.gnu.org/licenses/>.
 */
/*
 *  egon.go - Imatge boot0/boot1 aïllada, i utilitats per trobar el
 *            boot0 dins d'un medi complet.
 *
 */

package imgs;

import (
  "fmt"
  "io"
  "os"

  "github.com/adriagipas/sunxifw/egon"
)


/*************/
/* CONSTANTS */
/*************/

// Offsets dins d'un medi on les plataformes Allwinner guarden el
// boot0: 8KiB en les plataformes clàssiques, 256KiB en les que
// arranquen de particions GPT.
var _BOOT0_OFFSETS = []int64{ 8192, 262144 }


/********/
/* EGON */
/********/

// Fitxer que conté directament una imatge eGON (boot0 o boot1).
type _EGON struct {

  file_name string

}


func newEGON(file_name string) *_EGON {
  ret := _EGON {
    file_name : file_name,
    }
  return &ret
} // end newEGON


func (self *_EGON) PrintInfo(file io.Writer, prefix string) error {

  // Obri i llig el primer sector
  f,err := os.Open ( self.file_name )
  if err != nil { return err }
  var mem [egon.SECTOR_SIZE]byte
  sector := mem[:]
  if _,err := io.ReadFull ( f, sector ); err != nil {
    f.Close ()
    return fmt.Errorf ( "Unable to read the eGON header from '%s': %v",
      self.file_name, err )
  }

  // Imprimeix l'informe complet
  _,err= egon.OutputBoot0Info ( sector, f, file, prefix, true )

  // Tanca
  f.Close ()

  return err

} // end PrintInfo


func (self *_EGON) GetParts() ([]Part,error) {

  // Llig la capçalera
  f,err := os.Open ( self.file_name )
  if err != nil { return nil,err }
  var mem [egon.SECTOR_SIZE]byte
  sector := mem[:]
  if _,err := io.ReadFull ( f, sector ); err != nil {
    f.Close ()
    return nil,fmt.Errorf ( "Unable to read the eGON header from"+
      " '%s': %v", self.file_name, err )
  }
  f.Close ()
  header,err := egon.ReadHeader ( sector, io.Discard )
  if err != nil { return nil,err }

  // Una imatge aïllada és una única part
  ret := []Part{
    Part{
      Name   : "boot0",
      Type   : egon_type_str ( header ),
      Offset : 0,
      Length : int64(header.Filesize),
    },
  }

  return ret,nil

} // end GetParts


/*********************/
/* FUNCIONS PRIVADES */
/*********************/

func egon_type_str(header *egon.Header) string {
  if header.IsBoot1 () {
    return egon.MAGIC_BT1
  } else {
    return egon.MAGIC_BT0
  }
} // end egon_type_str


// Busca imatges eGON en els offsets de boot coneguts d'un medi
// complet i les torna com a parts. Els errors de descodificació es
// descarten: un medi sense boot0 no és cap error.
func find_boot0_parts(f *os.File) []Part {

  var ret []Part

  var mem [egon.SECTOR_SIZE]byte
  sector := mem[:]
  for _,offset := range _BOOT0_OFFSETS {
    if _,err := f.ReadAt ( sector, offset ); err != nil { continue }
    if !is_egon_magic ( sector ) { continue }
    header,err := egon.ReadHeader ( sector, io.Discard )
    if err != nil { continue }
    name := "boot0"
    if len(ret) > 0 {
      name= fmt.Sprintf ( "boot0.%d", len(ret) )
    }
    ret= append ( ret, Part{
      Name   : name,
      Type   : egon_type_str ( header ),
      Offset : offset,
      Length : int64(header.Filesize),
    })
  }

  return ret

} // end find_boot0_parts


// Imprimeix l'informe de les imatges eGON trobades en els offsets de
// boot coneguts d'un medi complet.
func print_boot0_info(

  f      *os.File,
  file   io.Writer,
  prefix string,

) error {

  var mem [egon.SECTOR_SIZE]byte
  sector := mem[:]
  for _,offset := range _BOOT0_OFFSETS {
    if _,err := f.ReadAt ( sector, offset ); err != nil { continue }
    if !is_egon_magic ( sector ) { continue }
    fmt.Fprintf ( file, "\n%sBoot0 at offset %d (%dkB):\n\n",
      prefix, offset, offset>>10 )
    if _,err := f.Seek ( offset+egon.SECTOR_SIZE, 0 ); err != nil {
      return err
    }
    if _,err := egon.OutputBoot0Info ( sector, f, file,
      prefix+"  ", true ); err != nil {
      // L'error ja ha quedat reportat en l'informe; es continua amb
      // el següent offset.
      continue
    }
  }

  return nil

} // end print_boot0_info
